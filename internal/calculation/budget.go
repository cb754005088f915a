package calculation

import (
	"math"

	"github.com/wealthcoach/wealthcoach/internal/domain"
)

// EvaluateBudget derives what is left each month after expenses, and the part
// of it that remains once the safety buffer is held back. The safe amount is
// truncated to whole currency units.
func EvaluateBudget(b domain.Budget) domain.BudgetSummary {
	available := math.Max(0, b.MonthlyIncome-b.MonthlyExpenses)
	safe := math.Trunc(available * (1 - b.BufferPct/100))
	return domain.BudgetSummary{
		Available:     available,
		SafeAvailable: math.Max(0, safe),
	}
}
