package calculation

import (
	"fmt"

	"github.com/wealthcoach/wealthcoach/internal/domain"
)

// crossoverTolerance treats balances within one cent as equal.
const crossoverTolerance = 0.01

// CrossoverResult describes the first month one trajectory overtakes another.
type CrossoverResult struct {
	Found   bool    `json:"found"`
	Month   int     `json:"month,omitempty"`   // 1-based
	Balance float64 `json:"balance,omitempty"` // balance of the overtaking trajectory at Month
}

// Crossover finds the first month where the lead between a and b flips. The
// lead is set by the first month in which they differ by more than a cent;
// equal months before that are skipped. Trajectories are aligned by month and
// compared over the shorter length.
func Crossover(a, b domain.Trajectory) (CrossoverResult, error) {
	if len(a) == 0 || len(b) == 0 {
		return CrossoverResult{}, fmt.Errorf("one or both trajectories are empty")
	}

	n := min(len(a), len(b))
	lead := 0
	for i := 0; i < n; i++ {
		sign := 0
		switch diff := a[i] - b[i]; {
		case diff > crossoverTolerance:
			sign = 1
		case diff < -crossoverTolerance:
			sign = -1
		}
		if sign == 0 {
			continue
		}
		if lead == 0 {
			lead = sign
			continue
		}
		if sign != lead {
			return CrossoverResult{Found: true, Month: i + 1, Balance: max(a[i], b[i])}, nil
		}
	}
	return CrossoverResult{}, nil
}
