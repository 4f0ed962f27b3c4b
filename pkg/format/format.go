// Package format renders engine numerics at the presentation boundary.
// Internal values stay full precision; only these helpers apply the fixed
// decimal places the operator screens expect.
package format

import "strconv"

// Weight formats weights and gross weights with two decimal places.
func Weight(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Currency formats prices and revenue with two decimal places.
func Currency(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Volume formats volumes with three decimal places.
func Volume(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// Percent formats utilization percentages with two decimal places.
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
