package linalg

import "fmt"

// Add returns a+b elementwise. Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}
	return out, nil
}

// Sub returns a-b elementwise. Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] -= b.data[i]
	}
	return out, nil
}

// Scale returns alpha*m elementwise. Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Scale: %w", err)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}
	return out, nil
}

// Transpose returns the transpose of m. Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	out, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[base+j]
		}
	}
	return out, nil
}

// Mul returns a*b (matrix product). Requires a.Cols() == b.Rows().
// Complexity: O(a.r * a.c * b.c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d * %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.r; i++ {
		aBase := i * a.c
		oBase := i * out.c
		for k := 0; k < a.c; k++ {
			aik := a.data[aBase+k]
			if aik == 0 {
				continue
			}
			kBase := k * b.c
			for j := 0; j < b.c; j++ {
				out.data[oBase+j] += aik * b.data[kBase+j]
			}
		}
	}
	return out, nil
}

// MatVec returns m*x. Requires m.Cols() == len(x). Complexity: O(r*c).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("MatVec: %w", err)
	}
	if m.c != len(x) {
		return nil, fmt.Errorf("MatVec: %dx%d * %d: %w", m.r, m.c, len(x), ErrDimensionMismatch)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		var sum float64
		for j := 0; j < m.c; j++ {
			sum += m.data[base+j] * x[j]
		}
		out[i] = sum
	}
	return out, nil
}
