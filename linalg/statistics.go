package linalg

import "fmt"

// CenterColumns subtracts the per-column mean from every element.
// Returns the centered copy and the column means (len == X.Cols()).
// Complexity: O(r*c).
func CenterColumns(X *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, fmt.Errorf("CenterColumns: %w", err)
	}
	r, c := X.r, X.c
	means := make([]float64, c)
	if r == 0 || c == 0 {
		return X, means, nil
	}
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			means[j] += X.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j := 0; j < c; j++ {
		means[j] *= invR
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, fmt.Errorf("CenterColumns: %w", err)
	}
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			out.data[base+j] = X.data[base+j] - means[j]
		}
	}
	return out, means, nil
}

// Covariance returns the unbiased sample covariance of X's columns,
// Cov = (Xcᵀ Xc)/(r-1), plus the column means used to center X.
//
// Contract: X must have at least 2 rows (observations).
// Complexity: O(r*c + r*c^2) time, O(c^2) space.
func Covariance(X *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, fmt.Errorf("Covariance: %w", err)
	}
	if X.r < 2 {
		return nil, nil, fmt.Errorf("Covariance: %d rows: %w", X.r, ErrDimensionMismatch)
	}
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, fmt.Errorf("Covariance: %w", err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, fmt.Errorf("Covariance: %w", err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, fmt.Errorf("Covariance: %w", err)
	}
	Cov, err := Scale(G, 1.0/float64(X.r-1))
	if err != nil {
		return nil, nil, fmt.Errorf("Covariance: %w", err)
	}
	return Cov, means, nil
}
