package output

import (
	"bytes"
	"encoding/csv"

	"github.com/wealthcoach/wealthcoach/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per plan, input order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.BatchReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Plan", "Months", "MonthlyContribution", "NetReturnPct", "RealReturnPct", "TotalContributions", "FinalNominal", "FinalReal", "FinalIndexed", "Growth", "Conservative", "Base", "Optimistic", "Target", "GoalReached", "GoalMonth", "RequiredMonthly"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range report.Reports {
		r := &report.Reports[i]
		row := []string{
			r.Name,
			intToString(r.Months()),
			fixed2(r.Plan.MonthlyContribution),
			fixed2(r.NetReturnPct),
			fixed2(r.RealReturnPct),
			r.TotalContributions.StringFixed(2),
			r.FinalNominal.StringFixed(2),
			r.FinalReal.StringFixed(2),
			r.FinalIndexed.StringFixed(2),
			r.Growth.StringFixed(2),
		}
		scen := make(map[domain.ScenarioKind]float64, len(r.Scenarios))
		for _, s := range r.Scenarios {
			scen[s.Kind] = s.FinalBalance
		}
		row = append(row,
			fixed2(scen[domain.ScenarioConservative]),
			fixed2(scen[domain.ScenarioBase]),
			fixed2(scen[domain.ScenarioOptimistic]),
		)
		if r.Goal != nil {
			row = append(row, fixed2(r.Goal.Target), boolToString(r.Goal.Reached), intToString(r.Goal.Month), r.RequiredMonthly.StringFixed(2))
		} else {
			row = append(row, "", "", "", "")
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
