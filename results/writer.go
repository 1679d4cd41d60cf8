package results

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/katalvlaran/multinest/linalg"
	"github.com/katalvlaran/multinest/nested"
)

// Write emits the plain-text result files spec.md §6 names, under
// prefix (e.g. "run/demo_"), plus a JSON summary when withJSON is true.
func Write(result *nested.Result, prefix string, elapsed time.Duration, credibleLevel float64, withJSON bool) error {
	if len(result.Posterior) == 0 {
		return ErrEmptyPosterior
	}
	dim := len(result.Posterior[0].Theta)

	if err := writeParameters(result, prefix, dim); err != nil {
		return err
	}
	if err := writeLikelihoods(result, prefix); err != nil {
		return err
	}
	if err := writeEvidenceInformation(result, prefix, elapsed); err != nil {
		return err
	}
	normWeights := normalizedWeights(result.Posterior)
	if err := writePosteriorDistribution(normWeights, prefix); err != nil {
		return err
	}
	if err := writeParameterSummary(result, normWeights, prefix, dim, credibleLevel); err != nil {
		return err
	}
	if withJSON {
		if err := writeJSON(result, normWeights, prefix, elapsed, credibleLevel); err != nil {
			return err
		}
	}
	return nil
}

func writeParameters(result *nested.Result, prefix string, dim int) error {
	for d := 0; d < dim; d++ {
		path := fmt.Sprintf("%sParameter%d.txt", prefix, d)
		if err := writeLines(path, len(result.Posterior), func(i int) string {
			return fmt.Sprintf("%.17g", result.Posterior[i].Theta[d])
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeLikelihoods(result *nested.Result, prefix string) error {
	path := prefix + "LikelihoodDistribution.txt"
	return writeLines(path, len(result.Posterior), func(i int) string {
		return fmt.Sprintf("%.17g", result.Posterior[i].LogL)
	})
}

func writeEvidenceInformation(result *nested.Result, prefix string, elapsed time.Duration) error {
	path := prefix + "EvidenceInformation.txt"
	f, err := os.Create(path)
	if err != nil {
		return newIOError(path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%.17g %.17g %.17g %d %.6f\n",
		result.LogZ, result.LogZErr, result.InformationGain, result.Iterations, elapsed.Seconds())
	if err := w.Flush(); err != nil {
		return newIOError(path, err)
	}
	return nil
}

func writePosteriorDistribution(weights []float64, prefix string) error {
	path := prefix + "PosteriorDistribution.txt"
	return writeLines(path, len(weights), func(i int) string {
		return fmt.Sprintf("%.17g", weights[i])
	})
}

func writeLines(path string, n int, line func(i int) string) error {
	f, err := os.Create(path)
	if err != nil {
		return newIOError(path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < n; i++ {
		fmt.Fprintln(w, line(i))
	}
	if err := w.Flush(); err != nil {
		return newIOError(path, err)
	}
	return nil
}

// normalizedWeights returns each posterior point's weight normalized to sum
// to one, computed stably in log space.
func normalizedWeights(posterior []nested.PosteriorPoint) []float64 {
	logTotal := math.Inf(-1)
	for _, p := range posterior {
		logTotal = linalg.LogAddExp(logTotal, p.LogWeight)
	}
	out := make([]float64, len(posterior))
	for i, p := range posterior {
		out[i] = math.Exp(p.LogWeight - logTotal)
	}
	return out
}
