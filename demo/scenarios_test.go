package demo

import (
	"context"
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/multinest/nested"
	"github.com/stretchr/testify/require"
)

func TestRosenbrockPeaksAtOneOne(t *testing.T) {
	s, err := Rosenbrock()
	require.NoError(t, err)
	logL, err := s.Likelihood.Eval([]float64{1, 1})
	require.NoError(t, err)
	require.InDelta(t, 0.0, logL, 1e-12)

	logLOff, err := s.Likelihood.Eval([]float64{0, 0})
	require.NoError(t, err)
	require.Less(t, logLOff, logL)
}

func TestGaussianShellPeaksAtRadius(t *testing.T) {
	s, err := GaussianShell([2]float64{0, 0}, 2.0, 0.1, [2][2]float64{{-5, 5}, {-5, 5}})
	require.NoError(t, err)

	onShell, err := s.Likelihood.Eval([]float64{2, 0})
	require.NoError(t, err)
	offShell, err := s.Likelihood.Eval([]float64{0, 0})
	require.NoError(t, err)
	require.Greater(t, onShell, offShell)
}

func TestEggBoxIsMultiModal(t *testing.T) {
	s, err := EggBox()
	require.NoError(t, err)

	peak, err := s.Likelihood.Eval([]float64{0, 0})
	require.NoError(t, err)
	require.InDelta(t, math.Pow(3, 5), peak, 1e-9)

	secondPeak, err := s.Likelihood.Eval([]float64{2 * math.Pi, 2 * math.Pi})
	require.NoError(t, err)
	require.InDelta(t, math.Pow(3, 5), secondPeak, 1e-9)

	require.Equal(t, 2, s.Prior.Dim())
}

func TestUniformBoxRejectsDegenerateBounds(t *testing.T) {
	_, err := uniformBox([2][2]float64{{1, 1}, {0, 1}})
	require.Error(t, err)
}

// TestGaussianShellEvidenceMatchesAnalyticValue runs the shell scenario to
// completion and checks log Z against the closed-form evidence across
// several seeds (spec.md §8 end-to-end scenarios). With width << radius the
// ring's likelihood integrates, in polar coordinates, to 2*pi*radius over
// the full plane (the radial Gaussian's mean is radius, and radius/width
// here is 20 sigma from the origin, so truncation at rho=0 is negligible);
// dividing by the box's area gives the evidence under a uniform prior.
func TestGaussianShellEvidenceMatchesAnalyticValue(t *testing.T) {
	const radius, width = 2.0, 0.1
	box := [2][2]float64{{-5, 5}, {-5, 5}}
	boxArea := (box[0][1] - box[0][0]) * (box[1][1] - box[1][0])
	analyticLogZ := math.Log(2*math.Pi*radius) - math.Log(boxArea)

	for _, seed := range []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		s, err := GaussianShell([2]float64{0, 0}, radius, width, box)
		require.NoError(t, err)

		cfg, err := nested.NewConfig(s.Prior, s.Likelihood,
			nested.WithInitialNobjects(300),
			nested.WithMinNobjects(150),
			nested.WithMaxDrawAttempts(50000),
			nested.WithClusteringSchedule(100000, 100000),
			nested.WithClusterer(1, 1, 1, 1e-3),
			nested.WithTerminationFactor(0.01),
			nested.WithSeed(seed),
		)
		require.NoError(t, err)

		result, err := nested.Run(context.Background(), cfg)
		require.NoError(t, err)
		require.False(t, result.Aborted)

		tolerance := 3 * result.LogZErr
		if tolerance < 0.3 {
			tolerance = 0.3
		}
		require.InDeltaf(t, analyticLogZ, result.LogZ, tolerance,
			"seed %d: log Z %.4f outside 3-sigma of analytic %.4f (err %.4f)", seed, result.LogZ, analyticLogZ, result.LogZErr)
	}
}

// TestRosenbrockPosteriorMedianNearOptimum runs the Rosenbrock scenario with
// the exact configuration spec.md §8 names and checks the posterior median
// lands within 0.1 of the true optimum (1,1), terminating in fewer than
// 50000 iterations.
func TestRosenbrockPosteriorMedianNearOptimum(t *testing.T) {
	s, err := Rosenbrock()
	require.NoError(t, err)

	cfg, err := nested.NewConfig(s.Prior, s.Likelihood,
		nested.WithInitialNobjects(1000),
		nested.WithMinNobjects(500),
		nested.WithMaxDrawAttempts(50000),
		nested.WithClusteringSchedule(100000, 100000),
		nested.WithClusterer(1, 1, 1, 1e-3),
		nested.WithTerminationFactor(0.05),
		nested.WithSeed(42),
	)
	require.NoError(t, err)

	result, err := nested.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.False(t, result.Aborted)
	require.Less(t, result.Iterations, 50000)

	medianX := weightedMedian(result.Posterior, 0)
	medianY := weightedMedian(result.Posterior, 1)
	require.InDelta(t, 1.0, medianX, 0.1)
	require.InDelta(t, 1.0, medianY, 0.1)
}

// TestEggBoxRecoversMultipleModes runs the egg-box scenario and checks that
// k-means clustering selects at least 4 clusters by iteration 1000
// (spec.md §8 end-to-end scenarios), confirming the live set's multi-modal
// structure is actually recovered rather than collapsed to a single
// ellipsoid.
func TestEggBoxRecoversMultipleModes(t *testing.T) {
	s, err := EggBox()
	require.NoError(t, err)

	cfg, err := nested.NewConfig(s.Prior, s.Likelihood,
		nested.WithInitialNobjects(500),
		nested.WithMinNobjects(250),
		nested.WithMaxDrawAttempts(50000),
		nested.WithClusteringSchedule(100, 50),
		nested.WithClusterer(1, 8, 5, 1e-2),
		nested.WithTerminationFactor(0.01),
		nested.WithSeed(7),
	)
	require.NoError(t, err)

	result, err := nested.Run(context.Background(), cfg)
	require.NoError(t, err)

	maxClusters := 0
	limit := len(result.NclustersHistory)
	if limit > 1000 {
		limit = 1000
	}
	for i := 0; i < limit; i++ {
		if result.NclustersHistory[i] > maxClusters {
			maxClusters = result.NclustersHistory[i]
		}
	}
	require.GreaterOrEqualf(t, maxClusters, 4,
		"egg-box clustering never reached k>=4 within the first %d iterations", limit)
}

// weightedMedian computes the posterior-weighted median of one coordinate,
// normalizing log-weights relative to their maximum to avoid underflow.
func weightedMedian(posterior []nested.PosteriorPoint, dim int) float64 {
	maxLogWeight := math.Inf(-1)
	for _, p := range posterior {
		if p.LogWeight > maxLogWeight {
			maxLogWeight = p.LogWeight
		}
	}

	type weighted struct {
		value, weight float64
	}
	entries := make([]weighted, len(posterior))
	var total float64
	for i, p := range posterior {
		w := math.Exp(p.LogWeight - maxLogWeight)
		entries[i] = weighted{value: p.Theta[dim], weight: w}
		total += w
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].value < entries[j].value })

	half := total / 2
	var cumulative float64
	for _, e := range entries {
		cumulative += e.weight
		if cumulative >= half {
			return e.value
		}
	}
	return entries[len(entries)-1].value
}
