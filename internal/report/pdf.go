package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"growth-tracker/internal/model"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight

	chartHeight = 70.0
)

// pdfReport renders a run as a PDF: summary metrics, a capital chart with
// weekend shading, and the per-day ledger.
type pdfReport struct {
	pdf     *fpdf.Fpdf
	summary Summary
	samples []model.DaySample
}

// WritePDF writes the report for summary and samples to w.
func WritePDF(w io.Writer, s Summary, samples []model.DaySample) error {
	r := &pdfReport{
		pdf:     fpdf.New("P", "mm", "A4", ""),
		summary: s,
		samples: samples,
	}
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)

	r.addSummaryPage()
	if len(samples) > 0 {
		r.addLedger()
	}
	return r.pdf.Output(w)
}

// Core PDF fonts are cp1252 and have no rupee glyph.
func pdfINR(v float64) string {
	return strings.Replace(FormatINR(v), "₹", "Rs. ", 1)
}

func (r *pdfReport) addSummaryPage() {
	p := r.pdf
	p.AddPage()

	p.SetFont("Arial", "B", 22)
	p.SetTextColor(0, 51, 102)
	p.CellFormat(contentWidth, 12, "Trading Growth Report", "", 1, "C", false, 0, "")
	p.SetFont("Arial", "I", 10)
	p.SetTextColor(90, 90, 90)
	p.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	p.Ln(6)

	s := r.summary
	conv := s.Converted()
	rows := [][2]string{
		{"Starting Capital ($)", FormatUSD(s.StartingCapital)},
		{"Starting Capital (INR)", pdfINR(conv.StartingCapital)},
	}
	if s.HasData {
		rows = append(rows,
			[2]string{"Final Capital ($)", FormatUSD(s.FinalCapital)},
			[2]string{"Final Capital (INR)", pdfINR(conv.FinalCapital)},
			[2]string{"Total Taken Out ($)", FormatUSD(s.TotalTakeout)},
			[2]string{"  of which daily", FormatUSD(s.TotalDailyTakeout)},
			[2]string{"  of which weekly", FormatUSD(s.TotalWeeklyTakeout)},
			[2]string{"Total Taken Out (INR)", pdfINR(conv.TotalTakeout)},
			[2]string{"Trading days", fmt.Sprintf("%d (%s to %s)", s.TradingDays,
				s.StartDate.Format(time.DateOnly), s.EndDate.Format(time.DateOnly))},
		)
	}
	rows = append(rows, [2]string{"Conversion rate", fmt.Sprintf("%.2f INR/USD", s.ConversionRate)})

	p.SetFillColor(245, 247, 250)
	p.SetDrawColor(200, 200, 200)
	p.SetTextColor(50, 50, 50)
	for i, row := range rows {
		fill := i%2 == 0
		p.SetFont("Arial", "B", 11)
		p.CellFormat(contentWidth*0.55, 8, row[0], "1", 0, "L", fill, 0, "")
		p.SetFont("Arial", "", 11)
		p.CellFormat(contentWidth*0.45, 8, row[1], "1", 1, "R", fill, 0, "")
	}

	if len(r.samples) > 1 {
		p.Ln(10)
		p.SetFont("Arial", "B", 13)
		p.SetTextColor(0, 51, 102)
		p.CellFormat(contentWidth, 8, "Capital", "", 1, "L", false, 0, "")
		r.drawCapitalChart()
	}
}

// drawCapitalChart plots CapitalAfter by trading-day index, shading the
// gap after each Friday.
func (r *pdfReport) drawCapitalChart() {
	p := r.pdf
	x0, y0 := marginLeft, p.GetY()+2
	n := len(r.samples)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range r.samples {
		lo = math.Min(lo, s.CapitalAfter)
		hi = math.Max(hi, s.CapitalAfter)
	}
	if hi == lo {
		hi = lo + 1
	}
	xAt := func(i int) float64 { return x0 + contentWidth*float64(i)/float64(n-1) }
	yAt := func(v float64) float64 { return y0 + chartHeight - chartHeight*(v-lo)/(hi-lo) }

	p.SetFillColor(225, 225, 225)
	for _, b := range WeekendBands(r.samples) {
		p.Rect(xAt(b.AfterIndex), y0, xAt(b.AfterIndex+1)-xAt(b.AfterIndex), chartHeight, "F")
	}

	p.SetDrawColor(160, 160, 160)
	p.Rect(x0, y0, contentWidth, chartHeight, "D")

	p.SetDrawColor(22, 163, 74)
	p.SetLineWidth(0.5)
	for i := 1; i < n; i++ {
		p.Line(xAt(i-1), yAt(r.samples[i-1].CapitalAfter), xAt(i), yAt(r.samples[i].CapitalAfter))
	}
	p.SetLineWidth(0.2)

	p.SetFont("Arial", "", 8)
	p.SetTextColor(90, 90, 90)
	p.SetXY(x0, y0+chartHeight+1)
	p.CellFormat(contentWidth/2, 5, r.samples[0].Date.Format(time.DateOnly), "", 0, "L", false, 0, "")
	p.CellFormat(contentWidth/2, 5, r.samples[n-1].Date.Format(time.DateOnly), "", 1, "R", false, 0, "")
	p.CellFormat(contentWidth, 5, fmt.Sprintf("min %s / max %s", FormatCompactUSD(lo), FormatCompactUSD(hi)), "", 1, "C", false, 0, "")
}

func (r *pdfReport) addLedger() {
	p := r.pdf
	p.AddPage()

	p.SetFont("Arial", "B", 13)
	p.SetTextColor(0, 51, 102)
	p.CellFormat(contentWidth, 8, "Daily Ledger", "", 1, "L", false, 0, "")
	p.Ln(2)

	headers := []string{"#", "Date", "Capital", "Daily", "Weekly", "Cumulative"}
	widths := []float64{10, 34, 36, 34, 34, 32}

	header := func() {
		p.SetFont("Arial", "B", 9)
		p.SetFillColor(0, 51, 102)
		p.SetTextColor(255, 255, 255)
		for i, h := range headers {
			p.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
		}
		p.Ln(-1)
		p.SetFont("Arial", "", 9)
		p.SetTextColor(50, 50, 50)
	}
	header()

	_, pageH := p.GetPageSize()
	for i, s := range r.samples {
		if p.GetY()+6 > pageH-marginBottom {
			p.AddPage()
			header()
		}
		fill := s.WeeklyBoundary
		p.SetFillColor(255, 243, 224)
		cells := []string{
			fmt.Sprintf("%d", i+1),
			s.Date.Format(HoverLayout),
			FormatUSD(s.CapitalAfter),
			FormatUSD(s.DailyTakeout),
			FormatUSD(s.WeeklyTakeout),
			FormatUSD(s.CumulativeTakeout),
		}
		for j, c := range cells {
			align := "R"
			if j == 1 {
				align = "L"
			}
			p.CellFormat(widths[j], 6, c, "1", 0, align, fill, 0, "")
		}
		p.Ln(-1)
	}
}
