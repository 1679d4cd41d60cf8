package ellipsoid

import "errors"

// Sentinel errors for the ellipsoid package.
var (
	// ErrEmptyCluster indicates a cluster with zero points was passed to New.
	ErrEmptyCluster = errors.New("ellipsoid: cluster has no points")

	// ErrTooFewPoints indicates a cluster has n_c <= D+1 points, too few to
	// estimate a covariance matrix reliably.
	ErrTooFewPoints = errors.New("ellipsoid: too few points to bound cluster")

	// ErrDimensionMismatch indicates point dimensionality does not match
	// the ellipsoid's dimensionality.
	ErrDimensionMismatch = errors.New("ellipsoid: dimension mismatch")

	// ErrNoEllipsoids indicates an operation was attempted on an empty Set.
	ErrNoEllipsoids = errors.New("ellipsoid: set has no ellipsoids")
)
