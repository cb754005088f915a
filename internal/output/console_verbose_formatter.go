package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wealthcoach/wealthcoach/internal/domain"
	"github.com/wealthcoach/wealthcoach/pkg/period"
)

// ConsoleVerboseFormatter renders the detailed, styled console report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	var buf bytes.Buffer
	cur := report.Currency

	fmt.Fprintln(&buf, renderTitle("DETAILED WEALTH PROJECTION REPORT"))
	fmt.Fprintln(&buf)

	for i := range report.Reports {
		writePlanSection(&buf, i+1, &report.Reports[i], cur)
	}

	if len(report.Reports) > 1 {
		rec := AnalyzePlans(report)
		fmt.Fprintln(&buf, headerStyle.Render("RECOMMENDATION"))
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		fmt.Fprintf(&buf, "  %s: %s\n", goodStyle.Render(rec.PlanName), rec.Reason)
		fmt.Fprintf(&buf, "  Real final balance: %s\n", FormatCurrency(rec.FinalReal, cur))
		if !rec.RealChange.IsZero() {
			fmt.Fprintf(&buf, "  Versus %s: %s (%s%%)\n", report.Reports[0].Name,
				signed(FormatCurrency(rec.RealChange, cur), rec.RealChange), rec.PercentageChange.StringFixed(2))
		}
		if rec.OvertakesMonth > 0 {
			fmt.Fprintf(&buf, "  Overtakes %s in month %d (~%.1f years)\n", report.Reports[0].Name,
				rec.OvertakesMonth, period.ToYears(rec.OvertakesMonth))
		}
		fmt.Fprintln(&buf)
	}

	return buf.Bytes(), nil
}

func writePlanSection(buf *bytes.Buffer, n int, r *domain.PlanReport, cur string) {
	fmt.Fprintf(buf, "PLAN %d: %s\n", n, r.Name)
	fmt.Fprintln(buf, strings.Repeat("=", 50))

	p := r.Plan
	inputs := table{
		Title:      "INPUTS",
		Headers:    []string{"Input", "Value"},
		RightAlign: []bool{false, true},
		Rows: [][]string{
			{"Monthly contribution", FormatAmount(p.MonthlyContribution, cur)},
			{"Horizon", fmt.Sprintf("%d years (%d months)", p.HorizonYears, r.Months())},
			{"Gross annual return", FormatPercentage(p.AnnualReturnPct)},
			{"Annual fees", FormatPercentage(p.AnnualFeePct)},
			{"Annual inflation", FormatPercentage(p.AnnualInflationPct)},
			{"Contribution growth", FormatPercentage(p.AnnualContributionGrowthPct)},
		},
	}
	if p.HasGoal() {
		inputs.Rows = append(inputs.Rows, []string{"Target", FormatAmount(p.Target, cur)})
	}
	fmt.Fprint(buf, renderTable(inputs))
	fmt.Fprintln(buf)

	if r.Budget != nil {
		fmt.Fprintln(buf, headerStyle.Render("  BUDGET"))
		fmt.Fprintf(buf, "  Available each month:  %s\n", FormatAmount(r.Budget.Available, cur))
		fmt.Fprintf(buf, "  Safe to invest:        %s\n", FormatAmount(r.Budget.SafeAvailable, cur))
		if p.UseSafeAvailable {
			fmt.Fprintln(buf, mutedStyle.Render("  (contribution set from the safe amount)"))
		}
		fmt.Fprintln(buf)
	}

	fmt.Fprint(buf, renderTable(table{
		Title:      "RESULTS",
		Headers:    []string{"Metric", "Value"},
		RightAlign: []bool{false, true},
		Rows: [][]string{
			{"Net return", FormatPercentage(r.NetReturnPct)},
			{"Real return", FormatPercentage(r.RealReturnPct)},
			{"Total contributions", FormatCurrency(r.TotalContributions, cur)},
			{"Final balance (nominal)", FormatCurrency(r.FinalNominal, cur)},
			{"Final balance (real)", FormatCurrency(r.FinalReal, cur)},
			{"Final balance (indexed)", FormatCurrency(r.FinalIndexed, cur)},
			{"Growth", FormatCurrency(r.Growth, cur)},
		},
	}))
	fmt.Fprintln(buf)

	scen := table{
		Title:      "SCENARIOS",
		Headers:    []string{"Scenario", "Net return", "Final balance"},
		RightAlign: []bool{false, true, true},
	}
	for _, s := range r.Scenarios {
		scen.Rows = append(scen.Rows, []string{s.Label, FormatPercentage(s.RateLabel()), FormatCurrency(s.DisplayBalance(), cur)})
	}
	fmt.Fprint(buf, renderTable(scen))
	fmt.Fprintln(buf)

	if r.Goal != nil {
		fmt.Fprintln(buf, headerStyle.Render("  GOAL"))
		if r.Goal.Reached {
			fmt.Fprintf(buf, "  %s reached in %s\n", goodStyle.Render(FormatAmount(r.Goal.Target, cur)), FormatGoal(r.Goal))
		} else {
			fmt.Fprintf(buf, "  %s %s\n", warnStyle.Render(FormatAmount(r.Goal.Target, cur)), FormatGoal(r.Goal))
		}
		fmt.Fprintf(buf, "  Required monthly contribution: %s\n", FormatCurrency(r.RequiredMonthly, cur))
		fmt.Fprintln(buf)
	}

	fmt.Fprint(buf, renderTable(milestoneTable(r, cur)))
	fmt.Fprintln(buf)

	if len(r.Tips) > 0 {
		fmt.Fprintln(buf, headerStyle.Render("  TIPS"))
		fmt.Fprint(buf, renderBullets(r.Tips, warnStyle))
		fmt.Fprintln(buf)
	}

	fmt.Fprintln(buf, headerStyle.Render("  KEY ASSUMPTIONS"))
	fmt.Fprint(buf, renderBullets(GenerateAssumptions(r), mutedStyle))
	fmt.Fprintln(buf)
}

// milestoneTable lists the year-end balances of every trajectory.
func milestoneTable(r *domain.PlanReport, cur string) table {
	t := table{
		Title:      "YEAR-END BALANCES",
		Headers:    []string{"Year", "Nominal", "Real", "Indexed"},
		RightAlign: []bool{true, true, true, true},
	}
	for m := 1; m <= r.Months(); m++ {
		if !period.IsYearEnd(m) {
			continue
		}
		nominal, _ := r.Nominal.At(m)
		realBal, _ := r.Real.At(m)
		indexed, _ := r.Indexed.At(m)
		t.Rows = append(t.Rows, []string{
			intToString(period.YearOf(m)),
			FormatAmount(nominal, cur),
			FormatAmount(realBal, cur),
			FormatAmount(indexed, cur),
		})
	}
	return t
}

func signed(s string, d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + s
	}
	return s
}
