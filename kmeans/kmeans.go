package kmeans

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/multinest/metric"
)

// lloydResult is one random-restart trial's outcome.
type lloydResult struct {
	centroids   [][]float64
	assignments []int
	counts      []int
	inertia     float64
}

// runLloyd runs one random-restart Lloyd trial: seed k centroids uniformly
// at random from data, then alternate assignment/update until the ratio of
// total centroid movement to total centroid norm drops below tol, or
// maxIter is reached.
func runLloyd(data [][]float64, k int, rng *rand.Rand, tol float64, maxIter int) lloydResult {
	n := len(data)
	dim := len(data[0])
	sq := metric.SquaredEuclidean{}

	centroids := seedCentroids(data, k, rng)
	assignments := make([]int, n)

	for iter := 0; iter < maxIter; iter++ {
		// Assignment step: nearest centroid wins.
		for i, x := range data {
			best, bestDist := 0, math.Inf(1)
			for c, centroid := range centroids {
				d, _ := sq.Distance(x, centroid)
				if d < bestDist {
					best, bestDist = c, d
				}
			}
			assignments[i] = best
		}

		// Update step: recompute centroids as cluster means.
		newCentroids := make([][]float64, k)
		counts := make([]int, k)
		for c := range newCentroids {
			newCentroids[c] = make([]float64, dim)
		}
		for i, x := range data {
			c := assignments[i]
			counts[c]++
			for d := 0; d < dim; d++ {
				newCentroids[c][d] += x[d]
			}
		}
		for c := range newCentroids {
			if counts[c] == 0 {
				// Empty-cluster policy: re-seed at the point farthest from
				// its current (assigned) centroid, per spec.md §4.3.
				newCentroids[c] = farthestPoint(data, assignments, centroids)
				continue
			}
			inv := 1.0 / float64(counts[c])
			for d := 0; d < dim; d++ {
				newCentroids[c][d] *= inv
			}
		}

		// Convergence: ratio of total movement to total centroid norm.
		var movement, norm float64
		for c := range centroids {
			dd, _ := sq.Distance(centroids[c], newCentroids[c])
			movement += math.Sqrt(dd)
			for _, v := range newCentroids[c] {
				norm += v * v
			}
		}
		norm = math.Sqrt(norm)
		centroids = newCentroids
		if norm == 0 {
			continue
		}
		if movement/norm < tol {
			break
		}
	}

	// Final assignment pass + inertia with the converged centroids.
	counts := make([]int, k)
	var inertia float64
	for i, x := range data {
		best, bestDist := 0, math.Inf(1)
		for c, centroid := range centroids {
			d, _ := sq.Distance(x, centroid)
			if d < bestDist {
				best, bestDist = c, d
			}
		}
		assignments[i] = best
		counts[best]++
		inertia += bestDist
	}

	return lloydResult{centroids: centroids, assignments: assignments, counts: counts, inertia: inertia}
}

// seedCentroids draws k distinct starting centroids uniformly at random
// from data (random-restart initialization, spec.md §4.3).
func seedCentroids(data [][]float64, k int, rng *rand.Rand) [][]float64 {
	perm := rng.Perm(len(data))
	centroids := make([][]float64, k)
	for c := 0; c < k; c++ {
		src := data[perm[c%len(perm)]]
		cp := make([]float64, len(src))
		copy(cp, src)
		centroids[c] = cp
	}
	return centroids
}

// farthestPoint returns a copy of the data point that is farthest from the
// centroid it is currently assigned to.
func farthestPoint(data [][]float64, assignments []int, centroids [][]float64) []float64 {
	sq := metric.SquaredEuclidean{}
	bestIdx, bestDist := 0, -1.0
	for i, x := range data {
		d, _ := sq.Distance(x, centroids[assignments[i]])
		if d > bestDist {
			bestIdx, bestDist = i, d
		}
	}
	cp := make([]float64, len(data[bestIdx]))
	copy(cp, data[bestIdx])
	return cp
}
