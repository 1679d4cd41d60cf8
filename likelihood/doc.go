// Package likelihood wraps a user-supplied log-likelihood function together
// with an optional Model (covariates + predict) the function may consult.
//
// Evaluation never retries on NaN: a NaN log-likelihood is a fatal Numeric
// error (spec.md §4.2, §7) and the driver aborts the run on the first
// offending evaluation. -Inf is a legal, non-fatal value (a point the
// likelihood rules out).
package likelihood
