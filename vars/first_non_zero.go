package vars

// FirstNonZero returns the first value that is not the zero value, for flag, config and environment fallbacks.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}

// FirstPositive returns the first value greater than zero, or zero.
func FirstPositive[T ~int | ~int64](values ...T) T {
	for _, value := range values {
		if value > 0 {
			return value
		}
	}
	return 0
}
