// Package kmeans partitions the live-point set into k clusters via
// random-restart Lloyd's algorithm, selecting k over [Kmin,Kmax] by a
// BIC-style, k-penalized score (spec.md §4.3, Open Question #2 — resolved:
// score(k) = inertia(k) + k*D*ln(N), lowest k wins ties).
//
// For each candidate k, Ntrials independent random-restart runs are
// launched concurrently (golang.org/x/sync/errgroup), each with its own
// split RNG stream (seed + trial offset) so results are reproducible
// regardless of scheduling, and the lowest-inertia trial is kept.
//
// Empty clusters are re-seeded at the point farthest from its current
// centroid and the assignment/update steps repeat, per spec.md §4.3.
package kmeans
