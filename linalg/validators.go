package linalg

import (
	"fmt"
	"math"
)

// ValidateNotNil ensures m is non-nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	return nil
}

// ValidateSquare ensures m is non-nil and square. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	return nil
}

// ValidateSameShape ensures a and b are non-nil and share identical dimensions.
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("ValidateSameShape: %dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	return nil
}

// ValidateSymmetric ensures m is square and symmetric within tol: for every
// i<j, |m[i,j] - m[j,i]| <= tol. Complexity: O(n^2).
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return fmt.Errorf("ValidateSymmetric: (%d,%d): %w", i, j, ErrNotSymmetric)
			}
		}
	}
	return nil
}
