package calculation

import "fmt"

// TipInput is the evaluated plan state the coaching rules look at.
type TipInput struct {
	MonthlyContribution         float64
	HorizonYears                int
	NetReturnPct                float64
	AnnualInflationPct          float64
	AnnualFeePct                float64
	AnnualContributionGrowthPct float64
}

// TipRule pairs a predicate with the advice it produces.
type TipRule struct {
	Name    string
	Applies func(TipInput) bool
	Message func(TipInput) string
}

// WellSetTip is returned when no rule fires.
const WellSetTip = "You are well set. Stick to the plan, avoid withdrawals and keep optimizing costs."

func staticMessage(s string) func(TipInput) string {
	return func(TipInput) string { return s }
}

// DefaultTipRules are evaluated in order; every matching rule contributes a tip.
var DefaultTipRules = []TipRule{
	{
		Name:    "low_contribution",
		Applies: func(in TipInput) bool { return in.MonthlyContribution < 300 },
		Message: staticMessage("Raise the monthly contribution by 100. Over 10 years the difference is huge."),
	},
	{
		Name:    "short_horizon",
		Applies: func(in TipInput) bool { return in.HorizonYears < 7 },
		Message: staticMessage("Extend the horizon to 10-15 years. Compounding does the heavy lifting."),
	},
	{
		Name:    "low_net_return",
		Applies: func(in TipInput) bool { return in.NetReturnPct < 6 },
		Message: staticMessage("Look for low-fee instruments with an average 7-10% return (for example global ETFs)."),
	},
	{
		Name:    "high_inflation",
		Applies: func(in TipInput) bool { return in.AnnualInflationPct >= 6 },
		Message: staticMessage("With high inflation, raise the monthly contribution every year (indexing)."),
	},
	{
		Name:    "high_fees",
		Applies: func(in TipInput) bool { return in.AnnualFeePct > 1.0 },
		Message: staticMessage("Cut costs. The gap between 0.5% and 2% a year can eat tens or hundreds of thousands."),
	},
	{
		Name:    "indexing",
		Applies: func(in TipInput) bool { return in.AnnualContributionGrowthPct >= 5 },
		Message: func(in TipInput) string {
			return fmt.Sprintf("Index the contribution by %g%%/year. It is one of the most powerful real-world levers.", in.AnnualContributionGrowthPct)
		},
	},
}

// GenerateTips runs rules over in and collects the messages of those that
// apply. With no matches it returns WellSetTip alone.
func GenerateTips(in TipInput, rules []TipRule) []string {
	var tips []string
	for _, rule := range rules {
		if rule.Applies(in) {
			tips = append(tips, rule.Message(in))
		}
	}
	if len(tips) == 0 {
		tips = append(tips, WellSetTip)
	}
	return tips
}
