// Package demo provides the three D=2 benchmark likelihoods named in
// spec.md §8 (Gaussian shell, Rosenbrock, egg-box), each paired with the
// prior box the reference scenario uses, for exercising a complete run
// end to end without a user-supplied model.
package demo
