package prior

import "math/rand"

// Prior models the marginal distribution of one coordinate of the
// parameter vector. Implementations must be safe to call concurrently from
// multiple goroutines sharing a single *Prior (the Joint only ever calls
// these with a caller-owned *rand.Rand, never shared RNG state).
type Prior interface {
	// Draw returns one sample from the prior using rng.
	Draw(rng *rand.Rand) float64

	// LogDensity returns log π(x), or math.Inf(-1) if x lies outside support.
	LogDensity(x float64) float64

	// FromUnitInterval maps u ∈ [0,1] to a parameter value via the inverse CDF.
	FromUnitInterval(u float64) float64
}
