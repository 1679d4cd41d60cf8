package prior

import "math/rand"

// Uniform is a uniform prior over the closed interval [Min, Max].
type Uniform struct {
	Min, Max float64
}

// NewUniform constructs a Uniform prior. Reports ErrInvalidBounds wrapped
// in a ConfigError if min >= max — a fatal configuration error per spec.md §4.1.
func NewUniform(min, max float64) (*Uniform, error) {
	if !(min < max) {
		return nil, newConfigError("NewUniform", ErrInvalidBounds)
	}
	return &Uniform{Min: min, Max: max}, nil
}

// Draw returns rng.Float64()*(Max-Min) + Min.
func (u *Uniform) Draw(rng *rand.Rand) float64 {
	return u.Min + rng.Float64()*(u.Max-u.Min)
}

// LogDensity returns -ln(Max-Min) inside [Min,Max], else -Inf.
func (u *Uniform) LogDensity(x float64) float64 {
	if x < u.Min || x > u.Max {
		return negInf
	}
	return -logDiff(u.Max, u.Min)
}

// FromUnitInterval maps u ∈ [0,1] linearly onto [Min, Max].
func (u *Uniform) FromUnitInterval(unit float64) float64 {
	return u.Min + unit*(u.Max-u.Min)
}
