// Package model provides concrete likelihood.Model implementations driven
// by fixed covariates, grounded on the polynomial regression model from the
// original DIAMONDS reference implementation.
package model
