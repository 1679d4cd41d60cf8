package metric

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrDimensionMismatch indicates the two points have different lengths.
var ErrDimensionMismatch = errors.New("metric: dimension mismatch")

// Metric computes a distance between two coordinate vectors.
type Metric interface {
	Distance(a, b []float64) (float64, error)
}

// Euclidean is the ordinary L2 distance, delegating the norm computation to
// gonum.org/v1/gonum/floats.
type Euclidean struct{}

// Distance returns the Euclidean (L2) distance between a and b.
func (Euclidean) Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	return floats.Distance(a, b, 2), nil
}

// SquaredEuclidean avoids the sqrt, used in the k-means assignment hot loop
// where only relative ordering of distances matters.
type SquaredEuclidean struct{}

// Distance returns Σ(a_i-b_i)².
func (SquaredEuclidean) Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum, nil
}

// Mahalanobis is the ellipsoid-metric distance (x-c)ᵀ M (x-c) for a
// precomputed inverse-covariance-like matrix M, stored row-major (len == D*D).
type Mahalanobis struct {
	Inv []float64
	Dim int
}

// Distance returns (a-b)ᵀ Inv (a-b).
func (m Mahalanobis) Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) || len(a) != m.Dim {
		return 0, ErrDimensionMismatch
	}
	diff := make([]float64, m.Dim)
	for i := range diff {
		diff[i] = a[i] - b[i]
	}
	var sum float64
	for i := 0; i < m.Dim; i++ {
		base := i * m.Dim
		var rowSum float64
		for j := 0; j < m.Dim; j++ {
			rowSum += m.Inv[base+j] * diff[j]
		}
		sum += diff[i] * rowSum
	}
	return math.Abs(sum), nil
}
