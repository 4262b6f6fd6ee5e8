package common

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange(min, value, max int) bool {
	return min <= value && value <= max
}
