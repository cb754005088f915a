package calculation

import (
	"math"

	"github.com/wealthcoach/wealthcoach/pkg/period"
)

// DefaultSolverIterations is the fixed bisection count used by RequiredMonthly.
// Sixty halvings of the starting range leave an error far below one cent.
const DefaultSolverIterations = 60

// maxBoundDoublings caps how far the starting upper bound may be widened.
const maxBoundDoublings = 64

// SolverResult carries the solved contribution and how the search went.
type SolverResult struct {
	Monthly        float64 `json:"monthly"`
	Iterations     int     `json:"iterations"`
	UpperBound     float64 `json:"upper_bound"`     // starting hi after any widening
	BoundDoublings int     `json:"bound_doublings"` // times hi had to be doubled
	Reachable      bool    `json:"reachable"`
}

// RequiredMonthly returns the smallest monthly contribution, to bisection
// precision, whose Simulate trajectory ends at or above target. A target <= 0
// needs no contribution.
func RequiredMonthly(target float64, years int, annualReturnPct float64) float64 {
	return RequiredMonthlyWithIterations(target, years, annualReturnPct, DefaultSolverIterations)
}

// RequiredMonthlyWithIterations is RequiredMonthly with an explicit iteration count.
func RequiredMonthlyWithIterations(target float64, years int, annualReturnPct float64, maxIterations int) float64 {
	return SolveRequiredMonthly(target, years, annualReturnPct, maxIterations).Monthly
}

// SolveRequiredMonthly bisects over the contribution for exactly maxIterations
// steps and returns the upper end of the final bracket.
//
// The search starts from hi = max(1000, target/months) * 5. For rates >= 0 the
// final balance is at least contribution*months, so hi already ends at five times
// the target. Negative rates can break that, so hi is doubled until it reaches
// target before bisecting. Final balance grows strictly with the contribution,
// which is what makes bisection valid here.
func SolveRequiredMonthly(target float64, years int, annualReturnPct float64, maxIterations int) SolverResult {
	if target <= 0 {
		return SolverResult{Reachable: true}
	}
	months := period.Months(years)
	if months == 0 {
		return SolverResult{Monthly: math.Inf(1)}
	}
	if maxIterations < 0 {
		maxIterations = 0
	}

	endBalance := func(monthly float64) float64 {
		return Simulate(monthly, years, annualReturnPct).Final()
	}

	lo, hi := 0.0, math.Max(1000, target/float64(months))*5
	doublings := 0
	for endBalance(hi) < target && doublings < maxBoundDoublings {
		hi *= 2
		doublings++
	}
	result := SolverResult{
		Iterations:     maxIterations,
		UpperBound:     hi,
		BoundDoublings: doublings,
		Reachable:      endBalance(hi) >= target,
	}

	for i := 0; i < maxIterations; i++ {
		mid := (lo + hi) / 2
		if endBalance(mid) >= target {
			hi = mid
		} else {
			lo = mid
		}
	}
	result.Monthly = hi
	return result
}
