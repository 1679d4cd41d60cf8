package kmeans

// Config configures a single Cluster call.
type Config struct {
	// Kmin, Kmax bound the candidate cluster counts (inclusive).
	Kmin, Kmax int

	// Ntrials is the number of random-restart Lloyd runs per candidate k.
	Ntrials int

	// RelTolerance is the convergence threshold: a Lloyd run stops when the
	// ratio of total centroid movement to total centroid norm falls below
	// this value.
	RelTolerance float64

	// MaxIterations caps Lloyd iterations per trial as a safety backstop.
	MaxIterations int

	// Seed seeds the per-trial split RNG streams deterministically.
	Seed int64
}

// DefaultConfig returns production-sane defaults.
func DefaultConfig() Config {
	return Config{
		Kmin:          1,
		Kmax:          1,
		Ntrials:       5,
		RelTolerance:  1e-4,
		MaxIterations: 300,
		Seed:          0,
	}
}

// Result is the outcome of model-selected clustering.
type Result struct {
	// K is the selected number of clusters.
	K int

	// Assignments maps point index -> cluster id in [0,K).
	Assignments []int

	// Centroids holds K centroid coordinate vectors.
	Centroids [][]float64

	// Counts holds the number of points assigned to each cluster.
	Counts []int

	// Inertia is the best (lowest) inertia achieved by the winning k.
	Inertia float64

	// Score is the model-selection score of the winning k:
	// inertia + k*D*ln(N).
	Score float64
}
