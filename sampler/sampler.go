package sampler

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/multinest/ellipsoid"
)

// Draw implements spec.md §4.6's constrained-sampler algorithm: it returns a
// fresh point theta with logL(theta) > threshold, drawn uniformly from the
// union of set's ellipsoids, or ErrDrawExhausted once cfg.MaxDrawAttempts is
// spent without acceptance.
func Draw(set *ellipsoid.Set, eval EvalFunc, inSupport InSupportFunc, threshold float64, cfg Config) ([]float64, float64, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	totalVolume := set.TotalVolume(allIndices(len(set.Ellipsoids)))

	for attempt := 0; attempt < cfg.MaxDrawAttempts; attempt++ {
		idx := selectEllipsoid(set, totalVolume, rng)
		theta := sampleUniform(set.Ellipsoids[idx], rng)

		if inSupport != nil && !inSupport(theta) {
			continue
		}

		logL, err := eval(theta)
		if err != nil {
			return nil, 0, err
		}
		if logL <= threshold {
			continue
		}

		n, err := set.ContainingCount(theta)
		if err != nil {
			return nil, 0, err
		}
		if n < 1 {
			// theta came from Ellipsoids[idx], so it must contain itself;
			// a count of zero indicates a numerical boundary case. Treat
			// conservatively as a rejection rather than dividing by zero.
			continue
		}
		if rng.Float64() <= 1.0/float64(n) {
			return theta, logL, nil
		}
	}

	return nil, 0, ErrDrawExhausted
}

// selectEllipsoid picks an ellipsoid index with probability proportional to
// its volume (spec.md §4.6 step 3).
func selectEllipsoid(set *ellipsoid.Set, totalVolume float64, rng *rand.Rand) int {
	target := rng.Float64() * totalVolume
	var cumulative float64
	for i, e := range set.Ellipsoids {
		cumulative += e.Volume
		if target <= cumulative {
			return i
		}
	}
	return len(set.Ellipsoids) - 1
}

// sampleUniform draws a point uniformly from e by sampling a direction on
// the unit sphere (normalized IID normals) and scaling the radius by
// u^(1/D), then mapping into the ellipsoid's frame (spec.md §4.6 step 4).
func sampleUniform(e *ellipsoid.Ellipsoid, rng *rand.Rand) []float64 {
	dim := e.Dim()

	direction := make([]float64, dim)
	var norm float64
	for i := range direction {
		direction[i] = rng.NormFloat64()
		norm += direction[i] * direction[i]
	}
	norm = math.Sqrt(norm)
	for i := range direction {
		direction[i] /= norm
	}

	u := rng.Float64()
	radius := math.Pow(u, 1.0/float64(dim))
	for i := range direction {
		direction[i] *= radius
	}

	// theta = c + V * diag(sqrt(lambda')) * direction
	theta := make([]float64, dim)
	for i := 0; i < dim; i++ {
		var sum float64
		for j := 0; j < dim; j++ {
			vij, err := e.Eigenvectors.At(i, j)
			if err != nil {
				continue
			}
			sum += vij * math.Sqrt(e.EnlargedEigenvalues[j]) * direction[j]
		}
		theta[i] = e.Center[i] + sum
	}
	return theta
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
