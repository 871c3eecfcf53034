package helpers

// Value dereferences val, returning the zero value when nil. Used for
// optional JSON fields decoded into pointer types.
func Value[T any](val *T) T {
	if val == nil {
		var zero T
		return zero
	}
	return *val
}
