package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/wealthcoach/wealthcoach/internal/domain"
)

// HTMLFormatter produces a self-contained HTML page with an SVG chart per plan.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"amount": FormatAmount,
	"pct":    FormatPercentage,
	"goal":   FormatGoal,
	"add":    func(i, j int) int { return i + j },
}).Parse(htmlTemplateSource))

const (
	chartWidth  = 640.0
	chartHeight = 240.0
)

type htmlPlan struct {
	*domain.PlanReport
	Assumptions []string
	Milestones  [][]string
	Nominal     string
	Real        string
	Indexed     string
}

func (h HTMLFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	var buf bytes.Buffer

	plans := make([]htmlPlan, len(report.Reports))
	for i := range report.Reports {
		r := &report.Reports[i]
		peak := max(r.Nominal.Final(), r.Real.Final(), r.Indexed.Final())
		plans[i] = htmlPlan{
			PlanReport:  r,
			Assumptions: GenerateAssumptions(r),
			Milestones:  milestoneTable(r, report.Currency).Rows,
			Nominal:     polyline(r.Nominal, peak),
			Real:        polyline(r.Real, peak),
			Indexed:     polyline(r.Indexed, peak),
		}
	}

	data := struct {
		*domain.BatchReport
		Plans          []htmlPlan
		Recommendation Recommendation
		ShowRecommend  bool
		ChartWidth     float64
		ChartHeight    float64
	}{report, plans, AnalyzePlans(report), len(report.Reports) > 1, chartWidth, chartHeight}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// polyline scales a trajectory into SVG points. Balances grow monotonically for
// non-negative rates, so the final values bound the chart.
func polyline(t domain.Trajectory, peak float64) string {
	if len(t) == 0 || peak <= 0 {
		return ""
	}
	var b strings.Builder
	step := chartWidth / float64(len(t))
	for i, p := range t.Points() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f,%.1f", float64(p.Month)*step, chartHeight-p.Balance/peak*chartHeight)
	}
	return b.String()
}
