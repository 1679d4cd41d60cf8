package kmeans

import "errors"

// Sentinel errors for the kmeans package.
var (
	// ErrNoPoints indicates the input data set is empty.
	ErrNoPoints = errors.New("kmeans: no points to cluster")

	// ErrInvalidKRange indicates Kmin > Kmax or Kmin < 1.
	ErrInvalidKRange = errors.New("kmeans: invalid [kmin,kmax] range")

	// ErrTooFewPoints indicates fewer points than the requested k.
	ErrTooFewPoints = errors.New("kmeans: fewer points than k")

	// ErrInvalidTrials indicates Ntrials < 1.
	ErrInvalidTrials = errors.New("kmeans: ntrials must be >= 1")
)
