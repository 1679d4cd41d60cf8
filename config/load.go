package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/multinest/likelihood"
	"github.com/katalvlaran/multinest/nested"
	"github.com/katalvlaran/multinest/prior"
	"github.com/katalvlaran/multinest/reducer"
)

// Load reads a YAML run-configuration file at path, builds the prior it
// declares, and returns a *nested.Config ready to pass to nested.Run. The
// likelihood must be supplied by the caller since it is Go code, not data.
func Load(path string, l *likelihood.Likelihood) (*nested.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, newFileError(path, err)
	}

	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, newFileError(path, err)
	}

	joint, err := buildJoint(file.Priors)
	if err != nil {
		return nil, newFileError(path, err)
	}

	opts, err := buildOptions(file)
	if err != nil {
		return nil, newFileError(path, err)
	}

	cfg, err := nested.NewConfig(joint, l, opts...)
	if err != nil {
		return nil, newFileError(path, err)
	}
	return cfg, nil
}

func buildJoint(specs []PriorSpec) (*prior.Joint, error) {
	if len(specs) == 0 {
		return nil, ErrNoCoordinates
	}
	coords := make([]prior.Prior, len(specs))
	for i, s := range specs {
		p, err := buildPrior(s)
		if err != nil {
			return nil, err
		}
		coords[i] = p
	}
	return prior.NewJoint(coords...)
}

func buildPrior(s PriorSpec) (prior.Prior, error) {
	switch s.Kind {
	case "uniform":
		return prior.NewUniform(s.Min, s.Max)
	case "normal":
		return prior.NewNormal(s.Mu, s.Sigma)
	default:
		return nil, ErrUnknownPriorKind
	}
}

// buildOptions translates every non-zero field of file into a nested.Option,
// so that omitted YAML fields fall through to nested.NewConfig's own
// defaults rather than overwriting them with Go's zero values.
func buildOptions(file File) ([]nested.Option, error) {
	var opts []nested.Option

	if file.InitialNobjects != 0 {
		opts = append(opts, nested.WithInitialNobjects(file.InitialNobjects))
	}
	if file.MinNobjects != 0 {
		opts = append(opts, nested.WithMinNobjects(file.MinNobjects))
	}
	if file.MaxDrawAttempts != 0 {
		opts = append(opts, nested.WithMaxDrawAttempts(file.MaxDrawAttempts))
	}
	if file.NinitialIterationsWithoutClustering != 0 || file.NiterationsWithSameClustering != 0 {
		opts = append(opts, nested.WithClusteringSchedule(
			file.NinitialIterationsWithoutClustering, file.NiterationsWithSameClustering))
	}
	if file.InitialEnlargementFraction != 0 || file.ShrinkingRate != 0 {
		opts = append(opts, nested.WithEnlargement(file.InitialEnlargementFraction, file.ShrinkingRate))
	}
	if file.TerminationFactor != 0 {
		opts = append(opts, nested.WithTerminationFactor(file.TerminationFactor))
	}
	if file.Kmin != 0 || file.Kmax != 0 || file.Ntrials != 0 || file.RelTolerance != 0 {
		opts = append(opts, nested.WithClusterer(file.Kmin, file.Kmax, file.Ntrials, file.RelTolerance))
	}
	if file.Reducer != "" {
		r, err := buildReducer(file.Reducer, file.Beta)
		if err != nil {
			return nil, err
		}
		opts = append(opts, nested.WithReducer(r))
	}
	if file.OutputPathPrefix != "" {
		opts = append(opts, nested.WithOutputPathPrefix(file.OutputPathPrefix))
	}
	if file.PrintOnTheScreen {
		opts = append(opts, nested.WithPrintOnTheScreen(true))
	}
	if file.Seed != 0 {
		opts = append(opts, nested.WithSeed(file.Seed))
	}
	return opts, nil
}

func buildReducer(kind string, beta float64) (reducer.Reducer, error) {
	switch kind {
	case "feroz":
		return reducer.Feroz{}, nil
	case "powerlaw":
		return reducer.Powerlaw{Beta: beta}, nil
	default:
		return nil, ErrUnknownReducer
	}
}
