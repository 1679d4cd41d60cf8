package nested_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/multinest/likelihood"
	"github.com/katalvlaran/multinest/nested"
	"github.com/katalvlaran/multinest/prior"
	"github.com/stretchr/testify/require"
)

func gaussianLikelihood() *likelihood.Likelihood {
	fn := func(theta []float64, _ []float64) (float64, error) {
		var sum float64
		for _, v := range theta {
			sum += v * v
		}
		return -0.5 * sum, nil
	}
	return likelihood.New(likelihood.ZeroModel{}, fn)
}

func uniformJoint(t *testing.T) *prior.Joint {
	t.Helper()
	u1, err := prior.NewUniform(-5, 5)
	require.NoError(t, err)
	u2, err := prior.NewUniform(-5, 5)
	require.NoError(t, err)
	j, err := prior.NewJoint(u1, u2)
	require.NoError(t, err)
	return j
}

func TestRunProducesFiniteEvidence(t *testing.T) {
	cfg, err := nested.NewConfig(uniformJoint(t), gaussianLikelihood(),
		nested.WithInitialNobjects(40),
		nested.WithMinNobjects(20),
		nested.WithMaxDrawAttempts(20000),
		nested.WithClusteringSchedule(50, 25),
		nested.WithClusterer(1, 2, 3, 1e-3),
		nested.WithTerminationFactor(0.1),
		nested.WithSeed(123),
	)
	require.NoError(t, err)

	result, err := nested.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.False(t, result.Aborted)
	require.False(t, math.IsNaN(result.LogZ))
	require.False(t, math.IsInf(result.LogZ, 0))
	require.GreaterOrEqual(t, result.LogZErr, 0.0)
	require.Greater(t, result.Iterations, 0)
	require.NotEmpty(t, result.Posterior)
}

func TestRunRespectsContextCancellation(t *testing.T) {
	cfg, err := nested.NewConfig(uniformJoint(t), gaussianLikelihood(),
		nested.WithInitialNobjects(20),
		nested.WithMinNobjects(10),
		nested.WithClusteringSchedule(1000, 1000),
		nested.WithTerminationFactor(0.001),
		nested.WithSeed(7),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := nested.Run(ctx, cfg)
	require.NoError(t, err)
	require.True(t, result.Aborted)
}

func TestNewConfigRejectsMissingPrior(t *testing.T) {
	_, err := nested.NewConfig(nil, gaussianLikelihood())
	require.ErrorIs(t, err, nested.ErrNoPrior)
}

func TestNewConfigRejectsInvalidNobjects(t *testing.T) {
	_, err := nested.NewConfig(uniformJoint(t), gaussianLikelihood(),
		nested.WithInitialNobjects(10),
		nested.WithMinNobjects(20),
	)
	require.ErrorIs(t, err, nested.ErrInvalidNobjects)
}

func TestNewConfigRejectsBadTerminationFactor(t *testing.T) {
	_, err := nested.NewConfig(uniformJoint(t), gaussianLikelihood(),
		nested.WithTerminationFactor(1.5),
	)
	require.ErrorIs(t, err, nested.ErrInvalidTerminationFactor)
}

// runToCompletion is the shared harness for the property tests below: a
// small, fast configuration run to normal termination (not aborted), used
// across several seeds to check invariants hold regardless of the
// particular random draw sequence (spec.md §8).
func runToCompletion(t *testing.T, seed int64) *nested.Result {
	t.Helper()
	cfg, err := nested.NewConfig(uniformJoint(t), gaussianLikelihood(),
		nested.WithInitialNobjects(50),
		nested.WithMinNobjects(25),
		nested.WithMaxDrawAttempts(20000),
		nested.WithClusteringSchedule(50, 25),
		nested.WithClusterer(1, 2, 3, 1e-3),
		nested.WithTerminationFactor(0.1),
		nested.WithSeed(seed),
	)
	require.NoError(t, err)

	result, err := nested.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.False(t, result.Aborted)
	return result
}

// TestRunWorstLogLIsMonotoneNonDecreasing checks spec.md §8 item 1: the
// discarded point's log-likelihood L*_t never decreases across iterations,
// since nested sampling always discards the current worst live point and
// its replacement is guaranteed (by sampler.Draw's threshold, see
// sampler_test.go) to exceed it.
func TestRunWorstLogLIsMonotoneNonDecreasing(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 17, 101} {
		result := runToCompletion(t, seed)
		require.NotEmpty(t, result.WorstLogLHistory)
		for i := 1; i < len(result.WorstLogLHistory); i++ {
			require.GreaterOrEqualf(t, result.WorstLogLHistory[i], result.WorstLogLHistory[i-1],
				"seed %d: L*_%d < L*_%d", seed, i, i-1)
		}
	}
}

// TestRunLogXIsMonotoneDecreasing checks spec.md §8 item 2: the prior mass
// log X_t strictly contracts every iteration.
func TestRunLogXIsMonotoneDecreasing(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 17, 101} {
		result := runToCompletion(t, seed)
		require.NotEmpty(t, result.LogXHistory)
		for i := 1; i < len(result.LogXHistory); i++ {
			require.Lessf(t, result.LogXHistory[i], result.LogXHistory[i-1],
				"seed %d: log X_%d >= log X_%d", seed, i, i-1)
		}
	}
}

// TestRunWeightsConserveEvidence checks spec.md §8 item 4: exp(log Z_final)
// equals the sum of exp(log w_i) over every discarded and folded posterior
// point. This is the invariant that catches evidence silently dropped on
// context cancellation, draw exhaustion, or reducer-driven live-set
// shrinkage, rather than only flowing through the main per-iteration
// discard step.
func TestRunWeightsConserveEvidence(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 17, 101} {
		result := runToCompletion(t, seed)

		logTotal := math.Inf(-1)
		for _, p := range result.Posterior {
			logTotal = addLog(logTotal, p.LogWeight)
		}

		require.InEpsilonf(t, math.Exp(result.LogZ), math.Exp(logTotal), 1e-6,
			"seed %d: sum of posterior weights does not conserve evidence", seed)
	}
}

// addLog is the log-sum-exp used only to recompute the independent total
// this test checks result.LogZ against; it intentionally does not reuse
// anything internal to the nested package's own evidence accounting.
func addLog(x, y float64) float64 {
	if math.IsInf(x, -1) {
		return y
	}
	if math.IsInf(y, -1) {
		return x
	}
	if x < y {
		x, y = y, x
	}
	return x + math.Log1p(math.Exp(y-x))
}
