package ellipsoid

import (
	"github.com/katalvlaran/multinest/linalg"
)

// shapeMatrix returns Q = V * diag(enlargedEigenvalues) * V^T, the shape
// matrix such that the ellipsoid is {x : (x-c)^T Q^-1 (x-c) <= 1}.
func (e *Ellipsoid) shapeMatrix() (*linalg.Dense, error) {
	dim := e.Dim()
	diag, err := linalg.NewDense(dim, dim)
	if err != nil {
		return nil, err
	}
	for i := 0; i < dim; i++ {
		if err := diag.Set(i, i, e.EnlargedEigenvalues[i]); err != nil {
			return nil, err
		}
	}
	vt, err := linalg.Transpose(e.Eigenvectors)
	if err != nil {
		return nil, err
	}
	tmp, err := linalg.Mul(e.Eigenvectors, diag)
	if err != nil {
		return nil, err
	}
	return linalg.Mul(tmp, vt)
}

// Overlaps reports whether the ellipsoids a and b share interior points,
// using the Alfano & Greer (2003) algebraic separation test: a and b are
// disjoint iff there exists s in (0,1) with
//
//	K(s) = 1 - s(1-s) * d^T * [s*Qb + (1-s)*Qa]^-1 * d  <  0
//
// where Qa, Qb are the ellipsoids' shape matrices (see shapeMatrix) and d is
// the vector between centers. K is convex on (0,1), so its minimum is found
// by golden-section search; the ellipsoids overlap iff that minimum is >= 0.
// This test never produces a false negative: the search only evaluates K at
// points of (0,1), so the minimum it reports is never below the true one.
func Overlaps(a, b *Ellipsoid) (bool, error) {
	if a.Dim() != b.Dim() {
		return false, ErrDimensionMismatch
	}

	qa, err := a.shapeMatrix()
	if err != nil {
		return false, err
	}
	qb, err := b.shapeMatrix()
	if err != nil {
		return false, err
	}

	d := make([]float64, a.Dim())
	for i := range d {
		d[i] = b.Center[i] - a.Center[i]
	}

	negMinK, err := goldenSectionMax(func(s float64) (float64, error) {
		k, err := kFunc(s, qa, qb, d)
		return -k, err
	}, 0.0, 1.0, 60)
	if err != nil {
		return false, err
	}

	return -negMinK >= 0, nil
}

// kFunc evaluates K(s) = 1 - s(1-s) * d^T M(s)^-1 d with M(s) = s*qb+(1-s)*qa,
// inverting M(s) via its eigendecomposition (M is symmetric, as a convex
// combination of symmetric matrices).
func kFunc(s float64, qa, qb *linalg.Dense, d []float64) (float64, error) {
	qbs, err := linalg.Scale(qb, s)
	if err != nil {
		return 0, err
	}
	qas, err := linalg.Scale(qa, 1-s)
	if err != nil {
		return 0, err
	}
	m, err := linalg.Add(qbs, qas)
	if err != nil {
		return 0, err
	}

	eigenvalues, eigenvectors, err := linalg.Eigen(m, 1e-9, 100)
	if err != nil {
		return 0, err
	}

	dim := len(d)
	var quad float64
	for k := 0; k < dim; k++ {
		var proj float64
		for i := 0; i < dim; i++ {
			v, err := eigenvectors.At(i, k)
			if err != nil {
				return 0, err
			}
			proj += v * d[i]
		}
		if eigenvalues[k] <= 0 {
			// Degenerate direction: treat as infinite curvature, contributes
			// nothing to the (finite) quadratic form's inverse.
			continue
		}
		quad += (proj * proj) / eigenvalues[k]
	}

	return 1 - s*(1-s)*quad, nil
}

// goldenSectionMax finds the maximum of a unimodal/concave f on [lo,hi] via
// golden-section search with a fixed iteration budget.
func goldenSectionMax(f func(float64) (float64, error), lo, hi float64, iterations int) (float64, error) {
	const invPhi = 0.6180339887498949

	x1 := hi - invPhi*(hi-lo)
	x2 := lo + invPhi*(hi-lo)
	f1, err := f(x1)
	if err != nil {
		return 0, err
	}
	f2, err := f(x2)
	if err != nil {
		return 0, err
	}

	for i := 0; i < iterations; i++ {
		if f1 < f2 {
			lo = x1
			x1, f1 = x2, f2
			x2 = lo + invPhi*(hi-lo)
			f2, err = f(x2)
			if err != nil {
				return 0, err
			}
		} else {
			hi = x2
			x2, f2 = x1, f1
			x1 = hi - invPhi*(hi-lo)
			f1, err = f(x1)
			if err != nil {
				return 0, err
			}
		}
	}

	if f1 > f2 {
		return f1, nil
	}
	return f2, nil
}
