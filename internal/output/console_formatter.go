package output

import (
	"bytes"
	"fmt"

	"github.com/wealthcoach/wealthcoach/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	var buf bytes.Buffer
	cur := report.Currency
	fmt.Fprintln(&buf, "WEALTH PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintln(&buf)
	for i := range report.Reports {
		r := &report.Reports[i]
		fmt.Fprintf(&buf, "%s: Contributions=%s Nominal=%s Real=%s Indexed=%s\n",
			r.Name,
			FormatCurrency(r.TotalContributions, cur),
			FormatCurrency(r.FinalNominal, cur),
			FormatCurrency(r.FinalReal, cur),
			FormatCurrency(r.FinalIndexed, cur),
		)
		fmt.Fprintf(&buf, "  NetReturn=%s RealReturn=%s Goal=%s",
			FormatPercentage(r.NetReturnPct), FormatPercentage(r.RealReturnPct), FormatGoal(r.Goal))
		if r.Goal != nil {
			fmt.Fprintf(&buf, " RequiredMonthly=%s", FormatCurrency(r.RequiredMonthly, cur))
		}
		fmt.Fprintln(&buf)
	}
	if len(report.Reports) > 1 {
		rec := AnalyzePlans(report)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%s)\n", rec.PlanName, rec.Reason)
	}
	return buf.Bytes(), nil
}
