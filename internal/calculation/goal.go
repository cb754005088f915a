package calculation

import "github.com/wealthcoach/wealthcoach/internal/domain"

// MonthToHit returns the first 1-based month whose balance reaches target.
// Balances never decrease for non-negative contributions and rates, so the
// first hit is the earliest one. Callers should not ask about a target <= 0.
func MonthToHit(trajectory domain.Trajectory, target float64) domain.GoalResult {
	for i, balance := range trajectory {
		if balance >= target {
			return domain.ReachedAt(target, i+1)
		}
	}
	return domain.NotReached(target)
}
