package output

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/wealthcoach/wealthcoach/internal/domain"
	money "github.com/wealthcoach/wealthcoach/pkg/decimal"
)

// FormatCurrency renders whole currency units with thousand separators, e.g. "1,234,567 lei".
func FormatCurrency(amount decimal.Decimal, currency string) string {
	return money.NewMoneyFromDecimal(amount).Format(currency)
}

// FormatAmount is FormatCurrency for float balances.
func FormatAmount(amount float64, currency string) string {
	return money.NewMoney(amount).Format(currency)
}

// FormatPercentage formats a percent value with 2 decimals.
func FormatPercentage(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 2, 64) + "%"
}

// FormatGoal describes a goal result in words.
func FormatGoal(goal *domain.GoalResult) string {
	switch {
	case goal == nil:
		return "no target"
	case !goal.Reached:
		return "not reached within the horizon"
	default:
		return "month " + intToString(goal.Month) + " (~" + strconv.FormatFloat(goal.Years(), 'f', 1, 64) + " years)"
	}
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// fixed2 renders a float with two decimals for machine-readable outputs.
func fixed2(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
