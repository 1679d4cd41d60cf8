package results

import (
	"encoding/json"
	"os"
	"time"

	"github.com/katalvlaran/multinest/nested"
)

// jsonSummary is the ADDED machine-readable run summary, covering the same
// ground as EvidenceInformation.txt and ParameterSummary.txt in one document
// for consumers that would rather not parse the fixed-width text files.
type jsonSummary struct {
	LogZ             float64            `json:"log_z"`
	LogZErr          float64            `json:"log_z_err"`
	InformationGain  float64            `json:"information_gain"`
	Iterations       int                `json:"iterations"`
	ElapsedSeconds   float64            `json:"elapsed_seconds"`
	CredibleLevel    float64            `json:"credible_level"`
	PosteriorSamples int                `json:"posterior_samples"`
	Parameters       []ParameterSummary `json:"parameters"`
}

func writeJSON(result *nested.Result, weights []float64, prefix string, elapsed time.Duration, credibleLevel float64) error {
	dim := len(result.Posterior[0].Theta)
	summary := jsonSummary{
		LogZ:             result.LogZ,
		LogZErr:          result.LogZErr,
		InformationGain:  result.InformationGain,
		Iterations:       result.Iterations,
		ElapsedSeconds:   elapsed.Seconds(),
		CredibleLevel:    credibleLevel,
		PosteriorSamples: len(result.Posterior),
		Parameters:       summarize(result, weights, dim, credibleLevel),
	}

	path := prefix + "Summary.json"
	f, err := os.Create(path)
	if err != nil {
		return newIOError(path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return newIOError(path, err)
	}
	return nil
}
