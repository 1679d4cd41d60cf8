// Package config loads a run's prior specification and tunable options from
// a YAML file into a *nested.Config, as the ADDED alternative to assembling
// options by hand via nested.Option functions. The likelihood itself is
// never described in YAML — it is Go code — so Load takes an already-built
// *likelihood.Likelihood and only resolves the declarative parts: the prior
// for each dimension, the reducer choice, and the numeric/scheduling knobs.
package config
