package nested

import "errors"

// Sentinel errors for the nested package.
var (
	// ErrNoPrior indicates Config was built without a prior.
	ErrNoPrior = errors.New("nested: config has no prior")

	// ErrNoLikelihood indicates Config was built without a likelihood.
	ErrNoLikelihood = errors.New("nested: config has no likelihood")

	// ErrInvalidNobjects indicates InitialNobjects/MinNobjects are
	// inconsistent (e.g. MinNobjects > InitialNobjects, or either <= 0).
	ErrInvalidNobjects = errors.New("nested: invalid live-point counts")

	// ErrInvalidTerminationFactor indicates TerminationFactor is outside (0,1).
	ErrInvalidTerminationFactor = errors.New("nested: termination factor must be in (0,1)")
)
