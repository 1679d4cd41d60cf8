// Package reducer implements the live-points reducer policies consulted by
// the nested-sampling driver each iteration (spec.md §4.7): given the
// current run state, decide the target number of live points for the next
// iteration.
package reducer
