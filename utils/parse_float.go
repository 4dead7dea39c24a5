package utils

import "strconv"

// ParseFloat converts a form value to float64, returning 0 for empty or
// malformed input
func ParseFloat(value string) float64 {
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}
