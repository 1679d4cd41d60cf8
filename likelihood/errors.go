package likelihood

import "errors"

// Sentinel errors for the likelihood package.
var (
	// ErrNaN indicates the likelihood function returned NaN — fatal per spec.md §7.
	ErrNaN = errors.New("likelihood: NaN log-likelihood")

	// ErrDimensionMismatch indicates theta's length does not match the model.
	ErrDimensionMismatch = errors.New("likelihood: dimension mismatch")
)

// NumericError wraps a fatal numeric error raised during likelihood
// evaluation (spec.md §7: Numeric errors are fatal for NaN/Inf propagation
// through a non-finite result). Theta is preserved for diagnostics.
type NumericError struct {
	Theta []float64
	Err   error
}

func (e *NumericError) Error() string {
	return "likelihood: numeric error evaluating θ: " + e.Err.Error()
}

func (e *NumericError) Unwrap() error { return e.Err }

func newNumericError(theta []float64, err error) error {
	cp := make([]float64, len(theta))
	copy(cp, theta)
	return &NumericError{Theta: cp, Err: err}
}
