// Package results writes a completed nested.Result to disk in the plain-text
// layout spec.md §6 specifies (one file per concern, space-separated ASCII
// doubles), plus an added JSON summary for programmatic consumers.
package results
