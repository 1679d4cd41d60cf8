package ellipsoid

import (
	"math"

	"github.com/katalvlaran/multinest/linalg"
)

// Config bundles the enlargement parameters shared across a nested-sampling
// run's ellipsoid construction calls (spec.md §4.4, Feroz & Hobson 2008).
type Config struct {
	// InitialEnlargementFactor is f0, the baseline enlargement fraction.
	InitialEnlargementFactor float64

	// Alpha shrinks the enlargement as the prior mass contracts.
	Alpha float64

	// TotalObjects is N_initial, the run's starting live-point count.
	TotalObjects int
}

// New builds a bounding Ellipsoid from a cluster's points (one point per
// row), the current log prior mass logX, and the enlargement config.
//
// Returns ErrEmptyCluster if points is empty, and ErrTooFewPoints if
// len(points) <= D+1 (too few to estimate covariance): callers should skip
// such clusters rather than treat the error as fatal.
func New(points [][]float64, logX float64, cfg Config) (*Ellipsoid, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyCluster
	}
	dim := len(points[0])
	if n <= dim+1 {
		return nil, ErrTooFewPoints
	}

	data, err := linalg.NewDenseFromRows(points)
	if err != nil {
		return nil, err
	}

	cov, center, err := linalg.Covariance(data)
	if err != nil {
		return nil, err
	}

	eigenvalues, eigenvectors, err := linalg.Eigen(cov, 1e-10, 100)
	if err != nil {
		return nil, err
	}

	bounding, err := boundingScale(points, center, eigenvectors, eigenvalues)
	if err != nil {
		return nil, err
	}

	enlarged := enlargeEigenvalues(bounding, logX, cfg, n)
	volume := hyperVolume(enlarged)

	return &Ellipsoid{
		Center:              center,
		Eigenvectors:        eigenvectors,
		Eigenvalues:         eigenvalues,
		EnlargedEigenvalues: enlarged,
		Volume:              volume,
		NumPoints:           n,
	}, nil
}

// boundingScale scales the sample-covariance eigenvalues up by the largest
// squared Mahalanobis distance among the cluster's own points, so the
// resulting ellipsoid encloses every point in the cluster before the
// Feroz & Hobson enlargement factor is applied (Shaw, Bridges & Hobson
// 2007's bounding-ellipsoid construction; sample covariance alone does not
// guarantee this).
func boundingScale(points [][]float64, center []float64, eigenvectors *linalg.Dense, eigenvalues []float64) ([]float64, error) {
	dim := len(center)
	k := 1.0
	for _, x := range points {
		var quad float64
		for j := 0; j < dim; j++ {
			var proj float64
			for i := 0; i < dim; i++ {
				v, err := eigenvectors.At(i, j)
				if err != nil {
					return nil, err
				}
				proj += v * (x[i] - center[i])
			}
			quad += (proj * proj) / eigenvalues[j]
		}
		if quad > k {
			k = quad
		}
	}

	scaled := make([]float64, dim)
	for i, lambda := range eigenvalues {
		scaled[i] = lambda * k
	}
	return scaled, nil
}

// enlargeEigenvalues implements the Feroz & Hobson (2008) semi-axis
// enlargement recipe, applied on top of the bounding-scaled eigenvalues:
//
//	f  = f0 * exp(alpha * logX) * sqrt(N_initial / n_c)
//	D' = sqrt(lambda) * (1+f)
//	lambda' = D'^2
func enlargeEigenvalues(eigenvalues []float64, logX float64, cfg Config, numPoints int) []float64 {
	f := cfg.InitialEnlargementFactor * math.Exp(cfg.Alpha*logX) * math.Sqrt(float64(cfg.TotalObjects)/float64(numPoints))

	out := make([]float64, len(eigenvalues))
	for i, lambda := range eigenvalues {
		axis := math.Sqrt(lambda) * (1 + f)
		out[i] = axis * axis
	}
	return out
}

// hyperVolume computes V_D * sqrt(prod(eigenvalues)), where V_D is the
// volume of the unit D-ball: V_D = pi^(D/2) / Gamma(D/2 + 1).
func hyperVolume(eigenvalues []float64) float64 {
	dim := len(eigenvalues)
	unitBallVolume := math.Pow(math.Pi, float64(dim)/2) / math.Gamma(float64(dim)/2+1)

	product := 1.0
	for _, lambda := range eigenvalues {
		product *= lambda
	}
	return unitBallVolume * math.Sqrt(product)
}

// Contains reports whether x lies within the ellipsoid's enlarged boundary.
func (e *Ellipsoid) Contains(x []float64) (bool, error) {
	if len(x) != e.Dim() {
		return false, ErrDimensionMismatch
	}

	diff := make([]float64, e.Dim())
	for i := range diff {
		diff[i] = x[i] - e.Center[i]
	}

	// Project into eigenbasis: y = V^T * diff.
	y := make([]float64, e.Dim())
	for j := 0; j < e.Dim(); j++ {
		var sum float64
		for i := 0; i < e.Dim(); i++ {
			v, err := e.Eigenvectors.At(i, j)
			if err != nil {
				return false, err
			}
			sum += v * diff[i]
		}
		y[j] = sum
	}

	var quad float64
	for j, yj := range y {
		quad += (yj * yj) / e.EnlargedEigenvalues[j]
	}
	return quad <= 1.0, nil
}
