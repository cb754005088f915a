package output

import (
	"github.com/shopspring/decimal"
	"github.com/wealthcoach/wealthcoach/internal/calculation"
	"github.com/wealthcoach/wealthcoach/internal/domain"
)

// Recommendation encapsulates the selection of the strongest plan in a batch.
type Recommendation struct {
	PlanName         string
	FinalReal        decimal.Decimal
	GoalMonth        int // zero when the choice was not made on goal timing
	RealChange       decimal.Decimal
	PercentageChange decimal.Decimal
	Reason           string
	OvertakesMonth   int // month the chosen plan's nominal balance passes the first plan's; zero if it never does
}

// AnalyzePlans picks the plan that reaches its target first. When no plan reaches
// a target it picks the highest inflation-adjusted final balance. Changes are
// measured against the first plan in the batch. Ties keep the earlier plan.
func AnalyzePlans(report *domain.BatchReport) Recommendation {
	if report == nil || len(report.Reports) == 0 {
		return Recommendation{}
	}

	best := -1
	for i := range report.Reports {
		g := report.Reports[i].Goal
		if g == nil || !g.Reached {
			continue
		}
		if best < 0 || g.Month < report.Reports[best].Goal.Month {
			best = i
		}
	}

	byGoal := best >= 0
	reason := "reaches its target first"
	if !byGoal {
		reason = "highest inflation-adjusted balance"
		best = 0
		for i := range report.Reports {
			if report.Reports[i].FinalReal.GreaterThan(report.Reports[best].FinalReal) {
				best = i
			}
		}
	}

	chosen := report.Reports[best]
	baseline := report.Reports[0].FinalReal
	delta := chosen.FinalReal.Sub(baseline)
	pct := decimal.Zero
	if !baseline.IsZero() {
		pct = delta.Div(baseline).Mul(decimal.NewFromInt(100))
	}

	rec := Recommendation{
		PlanName:         chosen.Name,
		FinalReal:        chosen.FinalReal,
		RealChange:       delta,
		PercentageChange: pct,
		Reason:           reason,
	}
	if byGoal {
		rec.GoalMonth = chosen.Goal.Month
	}
	if best > 0 {
		if c, err := calculation.Crossover(chosen.Nominal, report.Reports[0].Nominal); err == nil && c.Found {
			rec.OvertakesMonth = c.Month
		}
	}
	return rec
}
