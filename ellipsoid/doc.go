// Package ellipsoid builds and queries bounding hyper-ellipsoids over
// clustered live points for constrained prior sampling (spec.md §4.4).
//
// Each cluster's sample covariance is eigendecomposed (via linalg.Eigen),
// its semi-axes enlarged by the Feroz & Hobson (2008) recipe, and the
// resulting ellipsoid's volume computed from the enlarged eigenvalues.
// Clusters with n_c <= D+1 points are skipped: there are too few points to
// estimate a covariance matrix.
//
// Set partitions a collection of ellipsoids into connected components under
// pairwise overlap (Alfano & Greer 2003 separation test, minimized by
// golden-section search, no false negatives), found by breadth-first
// traversal of the overlap graph. Isolated ellipsoids are exactly the
// singleton components.
package ellipsoid
