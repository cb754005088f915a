package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthcoach/wealthcoach/pkg/period"
)

// Trajectory holds end-of-month balances; element i is the balance after month i+1.
type Trajectory []float64

// MonthBalance is a single (month, balance) point of a trajectory.
type MonthBalance struct {
	Month   int     `json:"month"`
	Balance float64 `json:"balance"`
}

// Months returns the number of simulated months.
func (t Trajectory) Months() int { return len(t) }

// Final returns the last balance, or zero for an empty trajectory.
func (t Trajectory) Final() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1]
}

// At returns the balance after the given 1-based month.
func (t Trajectory) At(month int) (float64, bool) {
	if month < 1 || month > len(t) {
		return 0, false
	}
	return t[month-1], true
}

// Points expands the trajectory into explicit (month, balance) pairs.
func (t Trajectory) Points() []MonthBalance {
	points := make([]MonthBalance, len(t))
	for i, b := range t {
		points[i] = MonthBalance{Month: i + 1, Balance: b}
	}
	return points
}

// ScenarioKind identifies one of the three fixed return scenarios.
type ScenarioKind string

const (
	ScenarioConservative ScenarioKind = "conservative"
	ScenarioBase         ScenarioKind = "base"
	ScenarioOptimistic   ScenarioKind = "optimistic"
)

// ScenarioResult is the outcome of compounding at one scenario rate.
type ScenarioResult struct {
	Kind         ScenarioKind `json:"kind"`
	Label        string       `json:"label"`
	NetReturnPct float64      `json:"net_return_pct"`
	FinalBalance float64      `json:"final_balance"`
}

// RateLabel returns the scenario rate rounded to two decimals for display.
func (s ScenarioResult) RateLabel() float64 {
	return math.Round(s.NetReturnPct*100) / 100
}

// DisplayBalance returns the final balance truncated to whole currency units.
func (s ScenarioResult) DisplayBalance() decimal.Decimal {
	return decimal.NewFromFloat(s.FinalBalance).Truncate(0)
}

// GoalResult reports when a target is first reached. A NotReached result is a
// normal outcome, not an error.
type GoalResult struct {
	Target  float64 `json:"target"`
	Reached bool    `json:"reached"`
	Month   int     `json:"month,omitempty"` // 1-based; zero when not reached
}

// NotReached builds the result for a target the trajectory never meets.
func NotReached(target float64) GoalResult {
	return GoalResult{Target: target}
}

// ReachedAt builds the result for a target first met at month.
func ReachedAt(target float64, month int) GoalResult {
	return GoalResult{Target: target, Reached: true, Month: month}
}

// Years converts the hit month to years rounded to one decimal.
func (g GoalResult) Years() float64 {
	if !g.Reached {
		return 0
	}
	return period.ToYears(g.Month)
}

// PlanReport is the full evaluation of one plan.
type PlanReport struct {
	Name string `json:"name"`
	Plan Plan   `json:"plan"` // effective inputs, after budget substitution

	Budget *BudgetSummary `json:"budget,omitempty"`

	NetReturnPct  float64 `json:"net_return_pct"`
	RealReturnPct float64 `json:"real_return_pct"`

	Nominal Trajectory `json:"nominal"`
	Real    Trajectory `json:"real"`
	Indexed Trajectory `json:"indexed"`

	TotalContributions decimal.Decimal `json:"total_contributions"`
	FinalNominal       decimal.Decimal `json:"final_nominal"`
	FinalReal          decimal.Decimal `json:"final_real"`
	FinalIndexed       decimal.Decimal `json:"final_indexed"`
	Growth             decimal.Decimal `json:"growth"`

	Scenarios []ScenarioResult `json:"scenarios"`

	Goal            *GoalResult     `json:"goal,omitempty"` // nil when the plan has no target
	RequiredMonthly decimal.Decimal `json:"required_monthly"`

	Tips []string `json:"tips"`
}

// Months returns the simulated horizon in months.
func (r *PlanReport) Months() int { return r.Nominal.Months() }

// BatchReport groups reports for every plan in a request or file, in input order.
type BatchReport struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Currency    string       `json:"currency"`
	Reports     []PlanReport `json:"reports"`
}
