package nested

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/multinest/ellipsoid"
	"github.com/katalvlaran/multinest/reducer"
	"github.com/katalvlaran/multinest/sampler"
	"golang.org/x/sync/errgroup"
)

func reducerState(cfg *Config, iteration, nobjects int, logX, logZ, logLmax float64) reducer.State {
	return reducer.State{
		Iteration:       iteration,
		CurrentNobjects: nobjects,
		InitialNobjects: cfg.InitialNobjects,
		MinNobjects:     cfg.MinNobjects,
		LogX:            logX,
		LogZ:            logZ,
		LogLMax:         logLmax,
	}
}

// Run executes the nested-sampling driver to completion (spec.md §4.8): it
// draws the initial live set, then iterates discard/replace/recluster/
// reduce/terminate until the termination factor is met, ctx is canceled, or
// the constrained sampler exhausts its draw budget.
func Run(ctx context.Context, cfg *Config) (*Result, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	live, err := drawInitialLiveSet(cfg, rng)
	if err != nil {
		return nil, err
	}

	evidence := newEvidenceState()
	var posterior []PosteriorPoint
	var nobjectsHistory []int
	var worstLogLHistory []float64
	var logXHistory []float64
	var nclustersHistory []int
	var set *ellipsoid.Set
	iteration := 0
	nobjects := cfg.InitialNobjects

	for {
		select {
		case <-ctx.Done():
			var flushed []PosteriorPoint
			evidence, flushed = foldLivePoints(evidence, live, evidence.logX, nobjects)
			posterior = append(posterior, flushed...)
			return finalize(evidence, posterior, nobjectsHistory, worstLogLHistory, logXHistory, nclustersHistory, iteration, true), nil
		default:
		}

		w, lstar := worstIndex(live)
		logXcur := evidence.contractLogX(nobjects)
		logW := logWeight(lstar, evidence.logX, logXcur)
		evidence = evidence.update(lstar, logXcur, logW)

		posterior = append(posterior, PosteriorPoint{Theta: live[w].Theta, LogL: lstar, LogWeight: logW})
		worstLogLHistory = append(worstLogLHistory, lstar)
		logXHistory = append(logXHistory, logXcur)

		needsRecluster := set == nil ||
			iteration == cfg.NinitialIterationsWithoutClustering ||
			(iteration > cfg.NinitialIterationsWithoutClustering &&
				(iteration-cfg.NinitialIterationsWithoutClustering)%cfg.NiterationsWithSameClustering == 0)
		if needsRecluster {
			forceSingle := iteration < cfg.NinitialIterationsWithoutClustering
			rebuilt, err := buildEllipsoidSet(live, logXcur, cfg, forceSingle, cfg.Seed+int64(iteration)*7919)
			if err != nil {
				return nil, err
			}
			if len(rebuilt.Ellipsoids) == 0 {
				rebuilt, err = buildEllipsoidSet(live, logXcur, cfg, true, cfg.Seed+int64(iteration)*7919)
				if err != nil {
					return nil, err
				}
			}
			set = rebuilt
		}
		nclustersHistory = append(nclustersHistory, len(set.Ellipsoids))

		inSupport := func(theta []float64) bool {
			ld, err := cfg.Prior.LogDensity(theta)
			if err != nil {
				return false
			}
			return !math.IsInf(ld, -1)
		}
		evalFn := func(theta []float64) (float64, error) { return cfg.Likelihood.Eval(theta) }

		theta, logL, err := sampler.Draw(set, evalFn, inSupport, lstar, sampler.Config{
			MaxDrawAttempts: cfg.MaxDrawAttempts,
			Seed:            cfg.Seed + int64(iteration)*104729,
		})
		if err != nil {
			var flushed []PosteriorPoint
			evidence, flushed = foldLivePoints(evidence, live, logXcur, nobjects)
			posterior = append(posterior, flushed...)
			return finalize(evidence, posterior, nobjectsHistory, worstLogLHistory, logXHistory, nclustersHistory, iteration, true), fmt.Errorf("nested: iteration %d: %w", iteration, err)
		}
		live[w] = LivePoint{Theta: theta, LogL: logL}

		iteration++
		nobjectsHistory = append(nobjectsHistory, nobjects)

		logLmax := maxLogL(live)
		target := cfg.Reducer.Next(reducerState(cfg, iteration, nobjects, logXcur, evidence.logZ, logLmax))
		if target < nobjects {
			removed, survivors := removeWorst(live, nobjects-target)
			var folded []PosteriorPoint
			evidence, folded = foldLivePoints(evidence, removed, logXcur, nobjects)
			posterior = append(posterior, folded...)
			live = survivors
			nobjects = target
		}

		if cfg.PrintOnTheScreen {
			cfg.Logger.Info().
				Int("iteration", iteration).
				Float64("logZ", evidence.logZ).
				Float64("logX", evidence.logX).
				Int("nobjects", nobjects).
				Msg("nested sampling iteration")
		}

		ratio := math.Exp(logLmax + evidence.logX - evidence.logZ)
		if ratio <= cfg.TerminationFactor {
			var flushed []PosteriorPoint
			evidence, flushed = foldLivePoints(evidence, live, evidence.logX, nobjects)
			posterior = append(posterior, flushed...)
			return finalize(evidence, posterior, nobjectsHistory, worstLogLHistory, logXHistory, nclustersHistory, iteration, false), nil
		}
	}
}

func drawInitialLiveSet(cfg *Config, rng *rand.Rand) ([]LivePoint, error) {
	thetas := cfg.Prior.Draw(rng, cfg.InitialNobjects)
	live := make([]LivePoint, cfg.InitialNobjects)

	g, _ := errgroup.WithContext(context.Background())
	for i := range thetas {
		i := i
		g.Go(func() error {
			logL, err := cfg.Likelihood.Eval(thetas[i])
			if err != nil {
				return err
			}
			live[i] = LivePoint{Theta: thetas[i], LogL: logL}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return live, nil
}

func worstIndex(live []LivePoint) (int, float64) {
	w, worst := 0, math.Inf(1)
	for i, p := range live {
		if p.LogL < worst {
			w, worst = i, p.LogL
		}
	}
	return w, worst
}

func maxLogL(live []LivePoint) float64 {
	m := math.Inf(-1)
	for _, p := range live {
		if p.LogL > m {
			m = p.LogL
		}
	}
	return m
}

// removeWorst removes the n lowest-likelihood live points, returning them
// (for posterior folding) and the surviving live set.
func removeWorst(live []LivePoint, n int) (removed, survivors []LivePoint) {
	sorted := make([]LivePoint, len(live))
	copy(sorted, live)
	// Simple selection: repeatedly pull the minimum. Fine at live-set scale.
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].LogL < sorted[minIdx].LogL {
				minIdx = j
			}
		}
		sorted[i], sorted[minIdx] = sorted[minIdx], sorted[i]
	}
	return sorted[:n], sorted[n:]
}

func finalize(evidence evidenceState, posterior []PosteriorPoint, nobjectsHistory []int, worstLogLHistory, logXHistory []float64, nclustersHistory []int, iterations int, aborted bool) *Result {
	navg := timeAverage(nobjectsHistory)
	logZErr := math.Sqrt(evidence.h / navg)
	return &Result{
		LogZ:                 evidence.logZ,
		LogZErr:              logZErr,
		InformationGain:      evidence.h,
		Iterations:           iterations,
		NobjectsPerIteration: nobjectsHistory,
		Posterior:            posterior,
		Aborted:              aborted,
		WorstLogLHistory:     worstLogLHistory,
		LogXHistory:          logXHistory,
		NclustersHistory:     nclustersHistory,
	}
}

func timeAverage(history []int) float64 {
	if len(history) == 0 {
		return 1
	}
	var sum int
	for _, n := range history {
		sum += n
	}
	return float64(sum) / float64(len(history))
}
