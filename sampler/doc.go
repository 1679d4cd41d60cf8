// Package sampler draws a fresh live point uniformly from the union of an
// ellipsoid.Set's enlarged ellipsoids, subject to a log-likelihood
// constraint (spec.md §4.6).
//
// Ellipsoids are chosen with probability proportional to their volume;
// candidate points are drawn by sampling a direction uniformly on the unit
// sphere and scaling the radius by u^(1/D), then transformed into the
// ellipsoid's frame. Overlap rejection (accept with probability 1/n, where
// n counts how many ellipsoids in the set contain the candidate) corrects
// the over-representation of overlap regions, yielding a draw uniform over
// the ellipsoid union. Isolated ellipsoids go through the same path: with
// no overlap partner, n is always 1 and rejection never fires.
package sampler
