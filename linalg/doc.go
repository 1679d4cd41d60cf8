// Package linalg provides the small set of dense-matrix primitives the
// sampler needs: construction, elementwise arithmetic, sample covariance,
// and a symmetric eigensolver.
//
// It is a trimmed, domain-adapted descendant of a general-purpose graph
// adjacency/incidence matrix package: this module only ever multiplies,
// transposes, covariance-reduces, and eigendecomposes per-cluster coordinate
// blocks of size D×n_c (D ≤ ~20 typical), so the adjacency/incidence/LU/QR
// machinery of the ancestor has no role here and was not carried over.
//
// Matrix is row-major (Dense.data has length Rows()*Cols()); ellipsoid and
// kmeans both store one sample per row and one dimension per column, i.e. an
// n×D layout. Live points are passed to the clusterer in that same layout;
// nothing is transposed into spec.md's column-major D×N convention.
package linalg
