package kmeans

import (
	"context"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Cluster partitions data (one point per row) into the best k in
// [cfg.Kmin, cfg.Kmax] by running cfg.Ntrials random-restart Lloyd trials
// per candidate k and selecting the k minimizing
//
//	score(k) = inertia(k) + k * D * ln(N)
//
// (spec.md §4.3, Open Question #2, resolved in SPEC_FULL.md §4.3). Ties are
// broken in favor of the lowest k. Trials for a given k run concurrently,
// each seeded from cfg.Seed plus a deterministic per-trial offset so the
// winning trial is reproducible independent of goroutine scheduling.
func Cluster(data [][]float64, cfg Config) (*Result, error) {
	n := len(data)
	if n == 0 {
		return nil, ErrNoPoints
	}
	dim := len(data[0])
	if cfg.Kmin < 1 || cfg.Kmin > cfg.Kmax {
		return nil, ErrInvalidKRange
	}
	if cfg.Kmax > n {
		return nil, ErrTooFewPoints
	}
	if cfg.Ntrials < 1 {
		return nil, ErrInvalidTrials
	}

	var best *Result
	for k := cfg.Kmin; k <= cfg.Kmax; k++ {
		trial, err := bestTrial(data, k, cfg)
		if err != nil {
			return nil, err
		}
		score := trial.inertia + float64(k)*float64(dim)*math.Log(float64(n))
		if best == nil || score < best.Score {
			best = &Result{
				K:           k,
				Assignments: trial.assignments,
				Centroids:   trial.centroids,
				Counts:      trial.counts,
				Inertia:     trial.inertia,
				Score:       score,
			}
		}
	}
	return best, nil
}

// bestTrial runs cfg.Ntrials Lloyd restarts for a fixed k concurrently and
// returns the lowest-inertia trial.
func bestTrial(data [][]float64, k int, cfg Config) (lloydResult, error) {
	results := make([]lloydResult, cfg.Ntrials)

	g, _ := errgroup.WithContext(context.Background())
	for t := 0; t < cfg.Ntrials; t++ {
		t := t
		g.Go(func() error {
			// Split PRNG stream per trial per k, deterministic regardless
			// of scheduling order (spec.md §5).
			seed := cfg.Seed + int64(k)*10_000 + int64(t)
			rng := rand.New(rand.NewSource(seed))
			results[t] = runLloyd(data, k, rng, cfg.RelTolerance, cfg.MaxIterations)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return lloydResult{}, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.inertia < best.inertia {
			best = r
		}
	}
	return best, nil
}
