package reducer

import (
	"math"

	"github.com/katalvlaran/multinest/linalg"
)

// Powerlaw shrinks the live-point count as the run's remaining evidence
// contribution shrinks:
//
//	remainderRatio = Lmax*X_t / (Z_t + Lmax*X_t)
//	N_{t+1} = max(minN, floor(N_initial * remainderRatio^Beta))
type Powerlaw struct {
	// Beta controls how aggressively Nobjects shrinks as remainderRatio
	// falls.
	Beta float64
}

// Next implements Reducer.
func (p Powerlaw) Next(state State) int {
	logLmaxX := state.LogLMax + state.LogX
	logDenominator := linalg.LogAddExp(state.LogZ, logLmaxX)
	logRemainderRatio := logLmaxX - logDenominator

	target := float64(state.InitialNobjects) * math.Exp(p.Beta*logRemainderRatio)
	n := int(math.Floor(target))
	if n < state.MinNobjects {
		n = state.MinNobjects
	}
	if n > state.CurrentNobjects {
		n = state.CurrentNobjects
	}
	return n
}
