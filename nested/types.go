package nested

import (
	"github.com/katalvlaran/multinest/likelihood"
	"github.com/katalvlaran/multinest/prior"
	"github.com/katalvlaran/multinest/reducer"
	"github.com/rs/zerolog"
)

// LivePoint is one member of the current live set.
type LivePoint struct {
	Theta []float64
	LogL  float64
}

// PosteriorPoint is one accumulated posterior sample.
type PosteriorPoint struct {
	Theta     []float64
	LogL      float64
	LogWeight float64
}

// Result is the outcome of a completed Run.
type Result struct {
	LogZ                 float64
	LogZErr              float64
	InformationGain      float64
	Iterations           int
	NobjectsPerIteration []int
	Posterior            []PosteriorPoint
	Aborted              bool

	// WorstLogLHistory and LogXHistory record, one entry per main-loop
	// iteration, the discarded point's log-likelihood L*_t and the
	// post-contraction prior mass log X_t — L*_t is non-decreasing and
	// log X_t strictly decreasing by construction (spec.md §8 items 1-2),
	// and both are exposed here so callers and
	// tests can check that directly, rather than only spot-checking the
	// final Result.
	WorstLogLHistory []float64
	LogXHistory      []float64

	// NclustersHistory records, one entry per main-loop iteration, the
	// number of ellipsoids in the live-set clustering most recently
	// rebuilt at or before that iteration — used to check multi-modal
	// recovery (spec.md §8 egg-box scenario) without re-running k-means.
	NclustersHistory []int
}

// Config holds every tunable named in spec.md §6, plus the ambient fields
// (Logger, Seed) added for a complete Go runtime.
type Config struct {
	Prior      *prior.Joint
	Likelihood *likelihood.Likelihood
	Reducer    reducer.Reducer

	InitialNobjects int
	MinNobjects     int
	MaxDrawAttempts int

	NinitialIterationsWithoutClustering int
	NiterationsWithSameClustering       int

	InitialEnlargementFraction float64
	ShrinkingRate              float64

	TerminationFactor float64

	Kmin, Kmax   int
	Ntrials      int
	RelTolerance float64

	PrintOnTheScreen bool
	OutputPathPrefix string

	Logger zerolog.Logger
	Seed   int64
}
