package calculation

import "math"

// NetReturn subtracts the annual fee drag from the gross return. The result is
// floored at zero: the engine never compounds at a negative rate.
func NetReturn(annualReturnPct, annualFeePct float64) float64 {
	return math.Max(0, annualReturnPct-annualFeePct)
}

// RealReturn subtracts inflation from the net return, floored at zero.
func RealReturn(netReturnPct, annualInflationPct float64) float64 {
	return math.Max(0, netReturnPct-annualInflationPct)
}

// monthlyRate converts an annual percentage to the simple monthly fraction
// used by the simulators.
func monthlyRate(annualPct float64) float64 {
	return (annualPct / 100) / 12
}
