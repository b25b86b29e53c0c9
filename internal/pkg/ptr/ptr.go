package ptr

// To returns a pointer to v. Mostly used by tests that need a *T literal.
func To[T any](v T) *T {
	return &v
}
