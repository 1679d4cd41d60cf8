// Package prior defines per-coordinate prior distributions and the Joint
// prior over the full Ndimensions-dimensional parameter space.
//
// A Prior implementation models one coordinate's marginal distribution:
//
//	Draw(rng)            — one sample from π
//	LogDensity(x)         — log π(x), or math.Inf(-1) outside support
//	FromUnitInterval(u)    — inverse CDF, u ∈ [0,1]
//
// Joint composes D Priors (one per dimension) into the product prior used
// by the rest of the sampler: Joint.Draw seeds the live set, Joint.LogDensity
// is the support/box check used by the constrained sampler's rejection step,
// and Joint.FromUnitInterval maps a unit-cube point through each dimension's
// inverse CDF. The sampler itself draws in parameter space and does not call
// FromUnitInterval.
//
// The closed set of implementations is Uniform and Normal (spec §6); adding
// a new one means implementing Prior and registering it — nothing else in
// the sampler depends on the concrete type.
package prior
