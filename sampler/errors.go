package sampler

import "errors"

// ErrDrawExhausted signals that maxDrawAttempts was reached without finding
// an acceptable point (spec.md §4.6 step 7). The driver treats this as a
// terminal condition for the run.
var ErrDrawExhausted = errors.New("sampler: draw attempts exhausted")
