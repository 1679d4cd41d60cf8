package nested

import (
	"math"

	"github.com/katalvlaran/multinest/linalg"
)

// evidenceState tracks the running log-evidence and Skilling information
// gain across iterations (spec.md §4.8 steps 2-5).
type evidenceState struct {
	logX float64
	logZ float64
	h    float64
}

func newEvidenceState() evidenceState {
	return evidenceState{logX: 0, logZ: math.Inf(-1), h: 0}
}

// contractLogX applies the per-iteration prior-mass contraction
// log X_t = log X_{t-1} + log((N_t-1)/N_t), valid whether or not N varies
// (spec.md §4.8 step 2; reduces to the classical log X_t = -t/N when N is
// held constant across iterations).
func (e evidenceState) contractLogX(nobjects int) float64 {
	return e.logX + math.Log(float64(nobjects-1)/float64(nobjects))
}

// logWeight computes log w_t = L*_t + log(X_{t-1} - X_t) using the
// numerically stable log1p form (X_t < X_{t-1} always holds).
func logWeight(lstar, logXprev, logXcur float64) float64 {
	return lstar + logXprev + math.Log1p(-math.Exp(logXcur-logXprev))
}

// update folds one iteration's (lstar, logWidth) into the evidence state
// via logAddExp for logZ and Skilling's stable recurrence for H.
func (e evidenceState) update(lstar, logXcur, logW float64) evidenceState {
	logZnew := linalg.LogAddExp(e.logZ, logW)

	var hNew float64
	if math.IsInf(e.logZ, -1) {
		hNew = math.Exp(logW-logZnew)*lstar - logZnew
	} else {
		hNew = math.Exp(logW-logZnew)*lstar + math.Exp(e.logZ-logZnew)*(e.h+e.logZ) - logZnew
	}

	return evidenceState{logX: logXcur, logZ: logZnew, h: hNew}
}

// foldRemainder computes the weight of a surviving live point folded into
// the evidence/posterior on termination or reducer shrinkage, with weight
// log(L_i) + logX_t - log(N_t) (spec.md §4.8 termination clause).
func foldRemainder(logL, logXcur float64, nobjects int) (logWeight float64) {
	return logL + logXcur - math.Log(float64(nobjects))
}

// foldLivePoints folds a batch of live points (remainder flush at loop exit,
// or reducer-driven shrinkage) into both the posterior sample and the
// running evidence/information state, via the same logAddExp/Skilling
// update used for ordinary discarded points — otherwise Result.LogZ omits
// every point ever folded this way and under-reports the true evidence
// (spec.md §8 item 4, weight conservation).
func foldLivePoints(evidence evidenceState, points []LivePoint, logXcur float64, nobjects int) (evidenceState, []PosteriorPoint) {
	posterior := make([]PosteriorPoint, len(points))
	for i, p := range points {
		w := foldRemainder(p.LogL, logXcur, nobjects)
		evidence = evidence.update(p.LogL, logXcur, w)
		posterior[i] = PosteriorPoint{Theta: p.Theta, LogL: p.LogL, LogWeight: w}
	}
	return evidence, posterior
}
