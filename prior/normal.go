package prior

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is an independent normal prior with mean Mu and standard
// deviation Sigma.
type Normal struct {
	Mu, Sigma float64
}

// NewNormal constructs a Normal prior. Reports ErrInvalidSigma wrapped in a
// ConfigError if sigma <= 0.
func NewNormal(mu, sigma float64) (*Normal, error) {
	if !(sigma > 0) {
		return nil, newConfigError("NewNormal", ErrInvalidSigma)
	}
	return &Normal{Mu: mu, Sigma: sigma}, nil
}

// dist returns the equivalent gonum distuv.Normal, used for both sampling
// and the inverse-CDF map; gonum owns the erf/erfinv numerics so this
// package never hand-rolls them.
func (n *Normal) dist(rng *rand.Rand) distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma, Src: rng}
}

// Draw returns one sample from 𝒩(Mu, Sigma²).
func (n *Normal) Draw(rng *rand.Rand) float64 {
	return n.dist(rng).Rand()
}

// LogDensity returns log 𝒩(x; Mu, Sigma²). Normal priors have full support,
// so this never returns -Inf.
func (n *Normal) LogDensity(x float64) float64 {
	return n.dist(nil).LogProb(x)
}

// FromUnitInterval maps u ∈ (0,1) via the normal inverse CDF (quantile
// function), delegating to gonum.org/v1/gonum/stat/distuv.
func (n *Normal) FromUnitInterval(u float64) float64 {
	return n.dist(nil).Quantile(u)
}
