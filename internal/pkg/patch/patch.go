package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr is Coalesce for optional fields. A non-nil ptr is copied so the result never aliases the patch.
func CoalescePtr[T any](ptr *T, fallback *T) *T {
	if ptr == nil {
		return fallback
	}
	v := *ptr
	return &v
}
