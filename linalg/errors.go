package linalg

import "errors"

// Sentinel errors for linalg package operations. Algorithms return these
// (optionally wrapped with fmt.Errorf("%s: %w", ...)); tests use errors.Is.
var (
	// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrNotSymmetric signals a symmetric matrix was required but the input
	// violates symmetry beyond the configured tolerance.
	ErrNotSymmetric = errors.New("linalg: matrix is not symmetric within tolerance")

	// ErrNilMatrix indicates a nil Matrix receiver or argument.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrEigenFailed indicates the Jacobi eigensolver failed to converge
	// within the configured iteration budget.
	ErrEigenFailed = errors.New("linalg: eigen decomposition failed to converge")
)
