package nested

import (
	"github.com/katalvlaran/multinest/likelihood"
	"github.com/katalvlaran/multinest/prior"
	"github.com/katalvlaran/multinest/reducer"
	"github.com/rs/zerolog"
)

// Option customizes a Config before a run begins. Later options override
// earlier ones, applied in the order passed to NewConfig.
type Option func(cfg *Config)

// NewConfig returns a Config seeded with production-sane defaults, then
// applies opts in order.
func NewConfig(p *prior.Joint, l *likelihood.Likelihood, opts ...Option) (*Config, error) {
	cfg := &Config{
		Prior:      p,
		Likelihood: l,
		Reducer:    reducer.Feroz{},

		InitialNobjects: 400,
		MinNobjects:     50,
		MaxDrawAttempts: 5000,

		NinitialIterationsWithoutClustering: 100,
		NiterationsWithSameClustering:       50,

		InitialEnlargementFraction: 0.1,
		ShrinkingRate:              0.0,

		TerminationFactor: 0.05,

		Kmin: 1, Kmax: 4, Ntrials: 5, RelTolerance: 1e-4,

		PrintOnTheScreen: false,
		OutputPathPrefix: "",

		Logger: zerolog.Nop(),
		Seed:   0,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Prior == nil {
		return ErrNoPrior
	}
	if cfg.Likelihood == nil {
		return ErrNoLikelihood
	}
	if cfg.InitialNobjects <= 0 || cfg.MinNobjects <= 0 || cfg.MinNobjects > cfg.InitialNobjects {
		return ErrInvalidNobjects
	}
	if cfg.TerminationFactor <= 0 || cfg.TerminationFactor >= 1 {
		return ErrInvalidTerminationFactor
	}
	return nil
}

// WithInitialNobjects sets the starting live-point count.
func WithInitialNobjects(n int) Option {
	return func(cfg *Config) { cfg.InitialNobjects = n }
}

// WithMinNobjects sets the reducer's floor.
func WithMinNobjects(n int) Option {
	return func(cfg *Config) { cfg.MinNobjects = n }
}

// WithMaxDrawAttempts sets the per-iteration draw cap.
func WithMaxDrawAttempts(n int) Option {
	return func(cfg *Config) { cfg.MaxDrawAttempts = n }
}

// WithClusteringSchedule sets the initial-prefix length run at k=1 and the
// reclustering period thereafter.
func WithClusteringSchedule(initialIterations, period int) Option {
	return func(cfg *Config) {
		cfg.NinitialIterationsWithoutClustering = initialIterations
		cfg.NiterationsWithSameClustering = period
	}
}

// WithEnlargement sets the ellipsoid enlargement parameters f0 and alpha.
func WithEnlargement(f0, alpha float64) Option {
	return func(cfg *Config) {
		cfg.InitialEnlargementFraction = f0
		cfg.ShrinkingRate = alpha
	}
}

// WithTerminationFactor sets the stopping-ratio threshold.
func WithTerminationFactor(tf float64) Option {
	return func(cfg *Config) { cfg.TerminationFactor = tf }
}

// WithClusterer sets the k-means model-selection range and tolerance.
func WithClusterer(kmin, kmax, ntrials int, relTolerance float64) Option {
	return func(cfg *Config) {
		cfg.Kmin, cfg.Kmax, cfg.Ntrials, cfg.RelTolerance = kmin, kmax, ntrials, relTolerance
	}
}

// WithReducer overrides the default Feroz (constant-N) reducer.
func WithReducer(r reducer.Reducer) Option {
	return func(cfg *Config) {
		if r != nil {
			cfg.Reducer = r
		}
	}
}

// WithLogger sets the structured logger (zerolog.Nop() by default).
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *Config) { cfg.Logger = logger }
}

// WithSeed seeds the run's PRNG stream.
func WithSeed(seed int64) Option {
	return func(cfg *Config) { cfg.Seed = seed }
}

// WithOutputPathPrefix sets the results-writer path prefix.
func WithOutputPathPrefix(prefix string) Option {
	return func(cfg *Config) { cfg.OutputPathPrefix = prefix }
}

// WithPrintOnTheScreen toggles progress logging each iteration.
func WithPrintOnTheScreen(on bool) Option {
	return func(cfg *Config) { cfg.PrintOnTheScreen = on }
}
