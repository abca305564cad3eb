package utils

import (
	"math"
)

// Round2 rounds a premium to two decimal places, half away from zero.
// Premiums are non-negative finite values, so the result is always well defined.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
