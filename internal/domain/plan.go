package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPlan is returned (wrapped) when a plan violates a hard input constraint.
var ErrInvalidPlan = errors.New("invalid plan")

// MaxHorizonYears bounds the simulation length accepted from callers.
const MaxHorizonYears = 100

// Plan carries the scalar inputs of a single projection request.
// Percentages are expressed in percent (7.5 means 7.5%), not as fractions.
type Plan struct {
	Name                        string  `yaml:"name" json:"name" toml:"name"`
	MonthlyContribution         float64 `yaml:"monthly_contribution" json:"monthly_contribution" toml:"monthly_contribution"`
	HorizonYears                int     `yaml:"horizon_years" json:"horizon_years" toml:"horizon_years"`
	AnnualReturnPct             float64 `yaml:"annual_return_pct" json:"annual_return_pct" toml:"annual_return_pct"`
	AnnualFeePct                float64 `yaml:"annual_fee_pct" json:"annual_fee_pct" toml:"annual_fee_pct"`
	AnnualInflationPct          float64 `yaml:"annual_inflation_pct" json:"annual_inflation_pct" toml:"annual_inflation_pct"`
	AnnualContributionGrowthPct float64 `yaml:"annual_contribution_growth_pct,omitempty" json:"annual_contribution_growth_pct,omitempty" toml:"annual_contribution_growth_pct,omitempty"`
	Target                      float64 `yaml:"target,omitempty" json:"target,omitempty" toml:"target,omitempty"` // 0 means no goal

	// Optional budget; when UseSafeAvailable is set the contribution is derived from it.
	Budget           *Budget `yaml:"budget,omitempty" json:"budget,omitempty" toml:"budget,omitempty"`
	UseSafeAvailable bool    `yaml:"use_safe_available,omitempty" json:"use_safe_available,omitempty" toml:"use_safe_available,omitempty"`
}

// Budget describes monthly cash flow used to size a sustainable contribution.
type Budget struct {
	MonthlyIncome   float64 `yaml:"monthly_income" json:"monthly_income" toml:"monthly_income"`
	MonthlyExpenses float64 `yaml:"monthly_expenses" json:"monthly_expenses" toml:"monthly_expenses"`
	BufferPct       float64 `yaml:"buffer_pct" json:"buffer_pct" toml:"buffer_pct"`
}

// BudgetSummary is the outcome of evaluating a Budget.
type BudgetSummary struct {
	Available     float64 `json:"available"`
	SafeAvailable float64 `json:"safe_available"`
}

// PlanFile is the on-disk container for one or more plans.
type PlanFile struct {
	Currency string `yaml:"currency,omitempty" json:"currency,omitempty" toml:"currency,omitempty"`
	Plans    []Plan `yaml:"plans" json:"plans" toml:"plans"`
}

// Validate checks the hard constraints on every input. UI-level caps (for example
// a return above 20%) are not errors here.
func (p *Plan) Validate() error {
	if err := requireFinite(map[string]float64{
		"monthly contribution":       p.MonthlyContribution,
		"annual return":              p.AnnualReturnPct,
		"annual fee":                 p.AnnualFeePct,
		"annual inflation":           p.AnnualInflationPct,
		"annual contribution growth": p.AnnualContributionGrowthPct,
		"target":                     p.Target,
	}); err != nil {
		return err
	}
	if p.MonthlyContribution < 0 {
		return fmt.Errorf("%w: monthly contribution cannot be negative", ErrInvalidPlan)
	}
	if p.HorizonYears < 1 {
		return fmt.Errorf("%w: horizon years must be at least 1", ErrInvalidPlan)
	}
	if p.HorizonYears > MaxHorizonYears {
		return fmt.Errorf("%w: horizon years cannot exceed %d", ErrInvalidPlan, MaxHorizonYears)
	}
	if p.AnnualFeePct < 0 {
		return fmt.Errorf("%w: annual fee cannot be negative", ErrInvalidPlan)
	}
	if p.AnnualInflationPct < 0 {
		return fmt.Errorf("%w: annual inflation cannot be negative", ErrInvalidPlan)
	}
	if p.AnnualContributionGrowthPct < 0 {
		return fmt.Errorf("%w: annual contribution growth cannot be negative", ErrInvalidPlan)
	}
	if p.Target < 0 {
		return fmt.Errorf("%w: target cannot be negative", ErrInvalidPlan)
	}
	if p.Budget != nil {
		if err := p.Budget.Validate(); err != nil {
			return err
		}
	}
	if p.UseSafeAvailable && p.Budget == nil {
		return fmt.Errorf("%w: use_safe_available requires a budget", ErrInvalidPlan)
	}
	return nil
}

// Validate checks budget inputs.
func (b *Budget) Validate() error {
	if err := requireFinite(map[string]float64{
		"budget monthly income":   b.MonthlyIncome,
		"budget monthly expenses": b.MonthlyExpenses,
		"budget buffer":           b.BufferPct,
	}); err != nil {
		return err
	}
	if b.MonthlyIncome < 0 {
		return fmt.Errorf("%w: budget monthly income cannot be negative", ErrInvalidPlan)
	}
	if b.MonthlyExpenses < 0 {
		return fmt.Errorf("%w: budget monthly expenses cannot be negative", ErrInvalidPlan)
	}
	if b.BufferPct < 0 || b.BufferPct > 100 {
		return fmt.Errorf("%w: budget buffer must be between 0 and 100 percent", ErrInvalidPlan)
	}
	return nil
}

// requireFinite rejects NaN and infinite inputs, which pass every ordered
// comparison above unnoticed.
func requireFinite(fields map[string]float64) error {
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidPlan, name)
		}
	}
	return nil
}

// HasGoal reports whether the plan sets a positive target.
func (p *Plan) HasGoal() bool {
	return p.Target > 0
}

// DisplayName returns the plan name, or fallback when the plan is unnamed.
func (p *Plan) DisplayName(fallback string) string {
	if p.Name != "" {
		return p.Name
	}
	return fallback
}
