package engine

// inferenceError collapses decode and model failures into one class, as the
// handlers report a single "internal processing failure" taxonomy.
type inferenceError struct{ msg string }

func (e inferenceError) Error() string { return e.msg }

// ErrInference constructs an inferenceError.
func ErrInference(msg string) error { return inferenceError{msg: msg} }

// IsInference reports whether err is a generic inference failure.
func IsInference(err error) bool {
	_, ok := err.(inferenceError)
	return ok
}

// dependencyUnavailableError signals a missing runtime dependency (e.g. a
// backend compiled out of this binary) so the HTTP layer can return 503
// Service Unavailable instead of 500.
type dependencyUnavailableError struct{ msg string }

func (e dependencyUnavailableError) Error() string { return e.msg }

// ErrDependencyUnavailable constructs a dependencyUnavailableError.
func ErrDependencyUnavailable(msg string) error { return dependencyUnavailableError{msg: msg} }

// IsDependencyUnavailable reports whether err indicates a missing/failed runtime dependency.
func IsDependencyUnavailable(err error) bool {
	_, ok := err.(dependencyUnavailableError)
	return ok
}
