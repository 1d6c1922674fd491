package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validParams() SimulationParams {
	return SimulationParams{
		StartingCapital:       40000,
		DailyRate:             0.10,
		DailyTakeoutFraction:  0,
		WeeklyTakeoutFraction: 0.5,
		HorizonDays:           5,
	}
}

func TestSimulationParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *SimulationParams)
		wantErr string
	}{
		{name: "valid", mutate: func(p *SimulationParams) {}},
		{name: "zero horizon is fine", mutate: func(p *SimulationParams) { p.HorizonDays = 0 }},
		{name: "negative rate is allowed", mutate: func(p *SimulationParams) { p.DailyRate = -0.01 }},
		{name: "zero capital", mutate: func(p *SimulationParams) { p.StartingCapital = 0 }, wantErr: "StartingCapital"},
		{name: "daily fraction above one", mutate: func(p *SimulationParams) { p.DailyTakeoutFraction = 1.5 }, wantErr: "DailyTakeoutFraction"},
		{name: "weekly fraction negative", mutate: func(p *SimulationParams) { p.WeeklyTakeoutFraction = -0.1 }, wantErr: "WeeklyTakeoutFraction"},
		{name: "negative horizon", mutate: func(p *SimulationParams) { p.HorizonDays = -1 }, wantErr: "HorizonDays"},
		{name: "nan rate", mutate: func(p *SimulationParams) { p.DailyRate = math.NaN() }, wantErr: "finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestTakeoutKindOf(t *testing.T) {
	assert.Equal(t, TakeoutNone, TakeoutKindOf(DaySample{}))
	assert.Equal(t, TakeoutDaily, TakeoutKindOf(DaySample{DailyTakeout: 1}))
	assert.Equal(t, TakeoutWeekly, TakeoutKindOf(DaySample{WeeklyTakeout: 1}))
	assert.Equal(t, TakeoutDailyWeekly, TakeoutKindOf(DaySample{DailyTakeout: 1, WeeklyTakeout: 2}))
	assert.Equal(t, 3.0, DaySample{DailyTakeout: 1, WeeklyTakeout: 2}.TotalTakeout())
}
