// Package multinest is a Bayesian evidence and parameter estimation library
// built around multi-ellipsoidal nested sampling (MultiNest-style).
//
// Given a parameter-space prior and a log-likelihood callable, multinest
// estimates the Bayesian evidence log Z, the information gain H, and a
// weighted posterior sample, by shrinking a live population of points
// through nested iso-likelihood contours while resampling replacements from
// a union of enlarged, covariance-fitted ellipsoids around the current
// live-point clusters.
//
// Subpackages:
//
//	prior/      — Uniform and Normal priors; draw, logDensity, fromUnitInterval
//	likelihood/ — user Model contract and log-likelihood evaluation
//	metric/     — coordinate-space distance functions
//	linalg/     — dense matrices, sample covariance, symmetric eigensolver
//	kmeans/     — k-means clustering with model selection over [kmin,kmax]
//	ellipsoid/  — per-cluster enlarged ellipsoids, overlap graph, volumes
//	sampler/    — constrained rejection sampler over the ellipsoid union
//	reducer/    — live-set size policies (Feroz, Powerlaw)
//	nested/     — the outer nested-sampling driver and evidence accounting
//	results/    — plain-text / JSON output writers
//	config/     — YAML run configuration
//	demo/       — bundled D=2 benchmark scenarios (Gaussian shell, Rosenbrock, egg-box)
//	cmd/multinest — CLI entry point
//
// The hard engineering lives in nested, kmeans, ellipsoid, and sampler; the
// rest is boundary code around them.
package multinest
