package ellipsoid

// Set holds a collection of ellipsoids built from one clustering pass,
// plus their pairwise overlap graph.
type Set struct {
	Ellipsoids []*Ellipsoid

	// adjacency[i] lists the indices j (j != i) such that Ellipsoids[i]
	// and Ellipsoids[j] overlap.
	adjacency [][]int
}

// NewSet builds the overlap graph for ellipsoids via the pairwise Overlaps
// test (O(n^2) pairs, each an O(D^3)-per-iteration algebraic test).
func NewSet(ellipsoids []*Ellipsoid) (*Set, error) {
	n := len(ellipsoids)
	adjacency := make([][]int, n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			overlap, err := Overlaps(ellipsoids[i], ellipsoids[j])
			if err != nil {
				return nil, err
			}
			if overlap {
				adjacency[i] = append(adjacency[i], j)
				adjacency[j] = append(adjacency[j], i)
			}
		}
	}

	return &Set{Ellipsoids: ellipsoids, adjacency: adjacency}, nil
}

// Neighbors returns the indices of ellipsoids overlapping Ellipsoids[i].
func (s *Set) Neighbors(i int) []int {
	return s.adjacency[i]
}

// Partition splits the set's indices into connected components under the
// overlap graph via breadth-first traversal. A component of size 1 is an
// isolated ellipsoid; components of size > 1 form an overlapping cluster.
func (s *Set) Partition() [][]int {
	n := len(s.Ellipsoids)
	visited := make([]bool, n)
	var components [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		var component []int

		for qi := 0; qi < len(queue); qi++ {
			idx := queue[qi]
			component = append(component, idx)
			for _, next := range s.adjacency[idx] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		components = append(components, component)
	}

	return components
}

// Isolated returns the indices of the ellipsoids that form singleton
// components (no overlap partner).
func (s *Set) Isolated() []int {
	var out []int
	for _, component := range s.Partition() {
		if len(component) == 1 {
			out = append(out, component[0])
		}
	}
	return out
}

// Overlapping returns the indices belonging to components of size > 1.
func (s *Set) Overlapping() []int {
	var out []int
	for _, component := range s.Partition() {
		if len(component) > 1 {
			out = append(out, component...)
		}
	}
	return out
}

// TotalVolume sums the volumes of the ellipsoids at the given indices.
func (s *Set) TotalVolume(indices []int) float64 {
	var total float64
	for _, i := range indices {
		total += s.Ellipsoids[i].Volume
	}
	return total
}

// ContainingCount returns the number of ellipsoids in the set containing x.
func (s *Set) ContainingCount(x []float64) (int, error) {
	var n int
	for _, e := range s.Ellipsoids {
		contains, err := e.Contains(x)
		if err != nil {
			return 0, err
		}
		if contains {
			n++
		}
	}
	return n, nil
}
