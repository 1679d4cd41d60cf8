// Package nested implements the nested-sampling driver (spec.md §4.8): the
// per-iteration loop that discards the worst live point, accumulates
// evidence and information gain, replaces the discarded point via the
// constrained sampler, periodically reclusters the live set, consults a
// live-points reducer, and checks the termination criterion.
//
// Configuration follows the teacher's functional-options idiom
// (builder.BuilderOption, generalized here to nested.Option): NewConfig
// applies a set of production-sane defaults, then each Option in order.
package nested
