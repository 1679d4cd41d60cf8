package metric_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multinest/metric"
)

func TestEuclideanDistance(t *testing.T) {
	d, err := metric.Euclidean{}.Distance([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	require.InDelta(t, 5.0, d, 1e-12)
}

func TestEuclideanDimensionMismatch(t *testing.T) {
	_, err := metric.Euclidean{}.Distance([]float64{0}, []float64{0, 1})
	require.ErrorIs(t, err, metric.ErrDimensionMismatch)
}

func TestSquaredEuclideanMatchesEuclideanSquared(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}
	sq, err := metric.SquaredEuclidean{}.Distance(a, b)
	require.NoError(t, err)
	eu, err := metric.Euclidean{}.Distance(a, b)
	require.NoError(t, err)
	require.InDelta(t, eu*eu, sq, 1e-9)
}

func TestMahalanobisIdentityMatchesSquaredEuclidean(t *testing.T) {
	m := metric.Mahalanobis{Inv: []float64{1, 0, 0, 1}, Dim: 2}
	a := []float64{0, 0}
	b := []float64{3, 4}
	got, err := m.Distance(a, b)
	require.NoError(t, err)
	sq, _ := metric.SquaredEuclidean{}.Distance(a, b)
	require.InDelta(t, sq, got, 1e-9)
}
