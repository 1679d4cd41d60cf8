package results

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/multinest/nested"
)

// ParameterSummary holds one dimension's posterior summary statistics.
type ParameterSummary struct {
	Mean         float64
	Median       float64
	Mode         float64
	CredibleLow  float64
	CredibleHigh float64
}

// summarize computes per-dimension weighted mean, weighted median, mode
// (the posterior point with maximum log-likelihood, a common MAP proxy),
// and a weighted credible interval at the given level (e.g. 0.68, 0.95).
func summarize(result *nested.Result, weights []float64, dim int, credibleLevel float64) []ParameterSummary {
	out := make([]ParameterSummary, dim)

	maxLLIdx := 0
	for i, p := range result.Posterior {
		if p.LogL > result.Posterior[maxLLIdx].LogL {
			maxLLIdx = i
		}
	}

	for d := 0; d < dim; d++ {
		values := make([]float64, len(result.Posterior))
		for i, p := range result.Posterior {
			values[i] = p.Theta[d]
		}

		out[d] = ParameterSummary{
			Mean:   weightedMean(values, weights),
			Median: weightedQuantile(values, weights, 0.5),
			Mode:   result.Posterior[maxLLIdx].Theta[d],
		}
		tail := (1 - credibleLevel) / 2
		out[d].CredibleLow = weightedQuantile(values, weights, tail)
		out[d].CredibleHigh = weightedQuantile(values, weights, 1-tail)
	}
	return out
}

func weightedMean(values, weights []float64) float64 {
	var sum float64
	for i, v := range values {
		sum += v * weights[i]
	}
	return sum
}

// weightedQuantile sorts (value, weight) pairs by value and returns the
// value at which the cumulative weight first reaches q.
func weightedQuantile(values, weights []float64, q float64) float64 {
	type pair struct {
		value, weight float64
	}
	pairs := make([]pair, len(values))
	for i := range values {
		pairs[i] = pair{values[i], weights[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].value < pairs[j].value })

	var cumulative float64
	for _, p := range pairs {
		cumulative += p.weight
		if cumulative >= q {
			return p.value
		}
	}
	return pairs[len(pairs)-1].value
}

func writeParameterSummary(result *nested.Result, weights []float64, prefix string, dim int, credibleLevel float64) error {
	summaries := summarize(result, weights, dim, credibleLevel)
	path := prefix + "ParameterSummary.txt"
	return writeLines(path, dim, func(d int) string {
		s := summaries[d]
		return fmt.Sprintf("%.17g %.17g %.17g %.17g %.17g", s.Mean, s.Median, s.Mode, s.CredibleLow, s.CredibleHigh)
	})
}
