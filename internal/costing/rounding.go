package costing

import "math"

// Round2 rounds to 2 decimal places (money), half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to 3 decimal places (quantities), half away from zero.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
