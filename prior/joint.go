package prior

import (
	"fmt"
	"math/rand"
)

// Joint composes one Prior per dimension into the product prior
// π(θ) = Π_d π_d(θ_d) that the rest of the sampler operates on.
type Joint struct {
	coords []Prior
}

// NewJoint constructs a Joint prior from one Prior per dimension, in order.
func NewJoint(coords ...Prior) (*Joint, error) {
	if len(coords) == 0 {
		return nil, newConfigError("NewJoint", ErrNoCoordinates)
	}
	out := make([]Prior, len(coords))
	copy(out, coords)
	return &Joint{coords: out}, nil
}

// Dim returns Ndimensions.
func (j *Joint) Dim() int { return len(j.coords) }

// Draw returns k independent samples, each a length-Dim coordinate vector.
func (j *Joint) Draw(rng *rand.Rand, k int) [][]float64 {
	out := make([][]float64, k)
	for i := range out {
		theta := make([]float64, len(j.coords))
		for d, p := range j.coords {
			theta[d] = p.Draw(rng)
		}
		out[i] = theta
	}
	return out
}

// LogDensity returns Σ_d log π_d(θ_d), or -Inf if any coordinate is outside
// its prior's support or theta has the wrong length.
func (j *Joint) LogDensity(theta []float64) (float64, error) {
	if len(theta) != len(j.coords) {
		return 0, fmt.Errorf("Joint.LogDensity: got %d coords, want %d: %w", len(theta), len(j.coords), ErrDimensionMismatch)
	}
	var sum float64
	for d, p := range j.coords {
		ld := p.LogDensity(theta[d])
		if ld == negInf {
			return negInf, nil
		}
		sum += ld
	}
	return sum, nil
}

// FromUnitInterval maps a unit-cube point u ∈ [0,1]^Dim to a parameter
// vector θ via each dimension's inverse CDF.
func (j *Joint) FromUnitInterval(u []float64) ([]float64, error) {
	if len(u) != len(j.coords) {
		return nil, fmt.Errorf("Joint.FromUnitInterval: got %d coords, want %d: %w", len(u), len(j.coords), ErrDimensionMismatch)
	}
	theta := make([]float64, len(j.coords))
	for d, p := range j.coords {
		theta[d] = p.FromUnitInterval(u[d])
	}
	return theta, nil
}
