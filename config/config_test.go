package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multinest/likelihood"
	"github.com/katalvlaran/multinest/reducer"
)

func writeYAML(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func stubLikelihood() *likelihood.Likelihood {
	return likelihood.New(nil, func(theta, predictions []float64) (float64, error) {
		return 0, nil
	})
}

func TestLoadBuildsJointPrior(t *testing.T) {
	path := writeYAML(t, `
priors:
  - kind: uniform
    min: -5
    max: 5
  - kind: normal
    mu: 0
    sigma: 1
seed: 7
`)
	cfg, err := Load(path, stubLikelihood())
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Prior.Dim())
	require.Equal(t, int64(7), cfg.Seed)
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := writeYAML(t, `
priors:
  - kind: uniform
    min: 0
    max: 1
initial_nobjects: 250
min_nobjects: 25
termination_factor: 0.1
reducer: powerlaw
reducer_beta: 0.5
`)
	cfg, err := Load(path, stubLikelihood())
	require.NoError(t, err)
	require.Equal(t, 250, cfg.InitialNobjects)
	require.Equal(t, 25, cfg.MinNobjects)
	require.InDelta(t, 0.1, cfg.TerminationFactor, 1e-12)
	require.IsType(t, reducer.Powerlaw{}, cfg.Reducer)
}

func TestLoadRejectsMissingPriors(t *testing.T) {
	path := writeYAML(t, "seed: 1\n")
	_, err := Load(path, stubLikelihood())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNoCoordinates)
}

func TestLoadRejectsUnknownPriorKind(t *testing.T) {
	path := writeYAML(t, `
priors:
  - kind: exponential
    min: 0
    max: 1
`)
	_, err := Load(path, stubLikelihood())
	require.ErrorIs(t, err, ErrUnknownPriorKind)
}

func TestLoadRejectsUnknownReducer(t *testing.T) {
	path := writeYAML(t, `
priors:
  - kind: uniform
    min: 0
    max: 1
reducer: mystery
`)
	_, err := Load(path, stubLikelihood())
	require.ErrorIs(t, err, ErrUnknownReducer)
}

func TestLoadWrapsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), stubLikelihood())
	require.Error(t, err)
	var fileErr *FileError
	require.ErrorAs(t, err, &fileErr)
}
