package results

import "errors"

// IOError wraps a failure writing one of the result files, preserving the
// file path and the underlying error for errors.As callers.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return "results: writing " + e.Path + ": " + e.Err.Error() }
func (e *IOError) Unwrap() error { return e.Err }

func newIOError(path string, err error) *IOError {
	return &IOError{Path: path, Err: err}
}

// ErrEmptyPosterior indicates Write was called on a Result with no
// posterior samples.
var ErrEmptyPosterior = errors.New("results: posterior sample is empty")
