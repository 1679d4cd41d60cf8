package ellipsoid

import "github.com/katalvlaran/multinest/linalg"

// Ellipsoid is a bounding hyper-ellipsoid for one cluster of live points.
//
// A point x belongs to the ellipsoid iff
//
//	(x-Center)^T * Eigenvectors * diag(1/EnlargedEigenvalues) * Eigenvectors^T * (x-Center) <= 1
type Ellipsoid struct {
	// Center is the cluster's sample mean, length D.
	Center []float64

	// Eigenvectors holds the covariance matrix's eigenvectors as columns
	// (D x D).
	Eigenvectors *linalg.Dense

	// Eigenvalues holds the original (pre-enlargement) covariance
	// eigenvalues, length D.
	Eigenvalues []float64

	// EnlargedEigenvalues holds the eigenvalues after axis enlargement,
	// length D.
	EnlargedEigenvalues []float64

	// Volume is the hyper-volume of the enlarged ellipsoid.
	Volume float64

	// NumPoints is the number of live points used to build this ellipsoid.
	NumPoints int
}

// Dim returns the ellipsoid's dimensionality.
func (e *Ellipsoid) Dim() int {
	return len(e.Center)
}
