package model

// TakeoutKind is a human-friendly label for the withdrawals of a day.
// Keep these values stable; they are intended for CSV output.
type TakeoutKind string

const (
	TakeoutNone        TakeoutKind = "NONE"
	TakeoutDaily       TakeoutKind = "DAILY"
	TakeoutWeekly      TakeoutKind = "WEEKLY"
	TakeoutDailyWeekly TakeoutKind = "DAILY+WEEKLY"
)

// TakeoutKindOf labels the withdrawals made on s.
func TakeoutKindOf(s DaySample) TakeoutKind {
	switch {
	case s.DailyTakeout != 0 && s.WeeklyTakeout != 0:
		return TakeoutDailyWeekly
	case s.WeeklyTakeout != 0:
		return TakeoutWeekly
	case s.DailyTakeout != 0:
		return TakeoutDaily
	default:
		return TakeoutNone
	}
}
