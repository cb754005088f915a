package output

import (
	"bytes"
	"encoding/csv"

	"github.com/wealthcoach/wealthcoach/internal/calculation"
	"github.com/wealthcoach/wealthcoach/internal/domain"
	"github.com/wealthcoach/wealthcoach/pkg/period"
)

// CSVDetailedExporter provides the month-by-month trajectories of every plan.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.BatchReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Plan", "Month", "Year", "Contribution", "IndexedContribution", "Nominal", "Real", "Indexed"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range report.Reports {
		r := &report.Reports[i]
		schedule := calculation.ContributionSchedule(r.Plan.MonthlyContribution, r.Plan.HorizonYears, r.Plan.AnnualContributionGrowthPct)
		for m := 1; m <= r.Months(); m++ {
			nominal, _ := r.Nominal.At(m)
			realBal, _ := r.Real.At(m)
			indexed, _ := r.Indexed.At(m)
			row := []string{
				r.Name,
				intToString(m),
				intToString(period.YearOf(m)),
				fixed2(r.Plan.MonthlyContribution),
				fixed2(schedule[m-1]),
				fixed2(nominal),
				fixed2(realBal),
				fixed2(indexed),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
