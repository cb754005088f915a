// Package period converts between 1-based simulation month indices and
// calendar-style year positions.
package period

import "math"

// MonthsPerYear is the number of compounding periods in a simulated year.
const MonthsPerYear = 12

// Months returns the number of simulated months in a horizon of whole years.
func Months(years int) int {
	if years <= 0 {
		return 0
	}
	return years * MonthsPerYear
}

// YearOf returns the 1-based simulation year containing the 1-based month index.
func YearOf(month int) int {
	if month <= 0 {
		return 0
	}
	return (month-1)/MonthsPerYear + 1
}

// MonthOfYear returns the position (1..12) of a 1-based month index within its year.
func MonthOfYear(month int) int {
	if month <= 0 {
		return 0
	}
	return (month-1)%MonthsPerYear + 1
}

// IsNewYear reports whether month opens a simulated year after the first one
// (13, 25, 37, ...).
func IsNewYear(month int) bool {
	return month != 1 && MonthOfYear(month) == 1
}

// IsYearEnd reports whether month closes a simulated year (12, 24, ...).
func IsYearEnd(month int) bool {
	return MonthOfYear(month) == MonthsPerYear
}

// ToYears converts a month count to years rounded to one decimal, e.g. 54 -> 4.5.
func ToYears(months int) float64 {
	return math.Round(float64(months)/MonthsPerYear*10) / 10
}
