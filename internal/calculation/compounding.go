package calculation

import (
	"github.com/wealthcoach/wealthcoach/internal/domain"
	"github.com/wealthcoach/wealthcoach/pkg/period"
)

// Simulate compounds a constant monthly contribution over years*12 months.
// Each month the existing balance grows first and the deposit is added after,
// so a deposit earns nothing in the month it is made.
func Simulate(monthly float64, years int, annualReturnPct float64) domain.Trajectory {
	months := period.Months(years)
	r := monthlyRate(annualReturnPct)

	series := make(domain.Trajectory, 0, months)
	balance := 0.0
	for m := 1; m <= months; m++ {
		balance = balance*(1+r) + monthly
		series = append(series, balance)
	}
	return series
}

// SimulateIndexed is Simulate with a contribution that rises by annualRaisePct
// at the start of every simulated year after the first (months 13, 25, 37, ...).
// Raises compound on the already-raised amount. A zero raise reproduces
// Simulate exactly.
func SimulateIndexed(monthly float64, years int, annualReturnPct, annualRaisePct float64) domain.Trajectory {
	months := period.Months(years)
	r := monthlyRate(annualReturnPct)
	raise := 1 + annualRaisePct/100

	series := make(domain.Trajectory, 0, months)
	balance := 0.0
	current := monthly
	for m := 1; m <= months; m++ {
		if period.IsNewYear(m) {
			current *= raise
		}
		balance = balance*(1+r) + current
		series = append(series, balance)
	}
	return series
}

// ContributionSchedule returns the deposit made in each month by
// SimulateIndexed for the same inputs.
func ContributionSchedule(monthly float64, years int, annualRaisePct float64) []float64 {
	months := period.Months(years)
	raise := 1 + annualRaisePct/100

	schedule := make([]float64, 0, months)
	current := monthly
	for m := 1; m <= months; m++ {
		if period.IsNewYear(m) {
			current *= raise
		}
		schedule = append(schedule, current)
	}
	return schedule
}
