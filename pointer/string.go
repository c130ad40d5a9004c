package pointer

func FromAny[T any](v T) *T {
	return &v
}

// Default returns the value p points to, or fallback when p is nil.
func Default[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
