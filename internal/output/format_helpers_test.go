package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/wealthcoach/wealthcoach/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "1,234,567 lei", FormatCurrency(decimal.NewFromFloat(1234567.89), "lei"))
	assert.Equal(t, "999 EUR", FormatCurrency(decimal.NewFromInt(999), "EUR"))
	assert.Equal(t, "-12,000 lei", FormatCurrency(decimal.NewFromInt(-12000), ""))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,000,000 lei", FormatAmount(1_000_000, "lei"))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "12.35%", FormatPercentage(12.3456))
	assert.Equal(t, "7.50%", FormatPercentage(7.5))
}

func TestFormatGoal(t *testing.T) {
	assert.Equal(t, "no target", FormatGoal(nil))
	assert.Equal(t, "not reached within the horizon", FormatGoal(&domain.GoalResult{Target: 10}))
	g := domain.ReachedAt(10, 54)
	assert.Equal(t, "month 54 (~4.5 years)", FormatGoal(&g))
}

func TestGenerateAssumptions(t *testing.T) {
	r := &domain.PlanReport{
		Plan:          domain.Plan{AnnualReturnPct: 8, AnnualFeePct: 0.5, AnnualInflationPct: 5, AnnualContributionGrowthPct: 5},
		NetReturnPct:  7.5,
		RealReturnPct: 2.5,
	}
	out := GenerateAssumptions(r)
	assert.Len(t, out, len(DefaultAssumptions)+3)
	assert.Contains(t, out, "Net return: 7.50% (8.00% gross - 0.50% fees)")
	assert.Contains(t, out, "Real return: 2.50% after 5.00% inflation")

	r.Plan.AnnualContributionGrowthPct = 0
	assert.Len(t, GenerateAssumptions(r), len(DefaultAssumptions)+2)
}
