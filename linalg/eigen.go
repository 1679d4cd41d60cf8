package linalg

import (
	"fmt"
	"math"
)

// Eigen computes the eigenvalues and orthonormal eigenvectors of the
// symmetric matrix m via the classical (largest-pivot) Jacobi rotation method.
//
// Contract: m must be square and symmetric within tol. Returns the
// eigenvalues (diagonal of the converged matrix) and Q, whose columns are
// the corresponding eigenvectors: m ≈ Q · diag(eigs) · Qᵀ.
//
// Determinism: at each iteration the pivot (p,q) maximizing |m[p,q]| is
// chosen deterministically; rotations are applied in a fixed order.
//
// Complexity: O(maxIter * n^2) time, O(n^2) space.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}

	n := m.r
	a := m.Clone()
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		p, pivQ int
		maxOff  float64
	)
	for iter := 0; iter < maxIter; iter++ {
		// Find the largest off-diagonal element.
		maxOff = 0.0
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				off := math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, pivQ = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app := a.data[p*n+p]
		aqq := a.data[pivQ*n+pivQ]
		apq := a.data[p*n+pivQ]

		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == pivQ {
				continue
			}
			aip := a.data[i*n+p]
			aiq := a.data[i*n+pivQ]
			newIP := c*aip - s*aiq
			newIQ := s*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+pivQ], a.data[pivQ*n+i] = newIQ, newIQ
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[pivQ*n+pivQ] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+pivQ], a.data[pivQ*n+p] = 0, 0

		for i := 0; i < n; i++ {
			qip := q.data[i*n+p]
			qiq := q.data[i*n+pivQ]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+pivQ] = s*qip + c*qiq
		}
	}

	// Verify convergence.
	maxOff = 0
	for i := 0; i < n; i++ {
		base := i * n
		for j := i + 1; j < n; j++ {
			if off := math.Abs(a.data[base+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, fmt.Errorf("Eigen: %w", ErrEigenFailed)
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}
	return eigs, q, nil
}
