package likelihood

import "math"

// Eval computes log L(theta): it asks the Model for predictions, then
// evaluates the wrapped Func against theta and those predictions.
//
// A NaN result is fatal: Eval returns a *NumericError wrapping ErrNaN and
// the caller (the nested-sampling driver) must abort the run, per
// spec.md §4.2/§7. -Inf is a legal result (not an error).
func (l *Likelihood) Eval(theta []float64) (float64, error) {
	predictions, err := l.model.Predict(theta)
	if err != nil {
		return 0, newNumericError(theta, err)
	}

	logL, err := l.fn(theta, predictions)
	if err != nil {
		return 0, newNumericError(theta, err)
	}
	if math.IsNaN(logL) {
		return 0, newNumericError(theta, ErrNaN)
	}
	return logL, nil
}

// GaussianLogLikelihood computes the standard independent-Gaussian
// log-likelihood of observations given predictions and per-point
// uncertainties, grounded on the classical
// Σ_i [ -0.5*ln(2π σ_i²) - (o_i - p_i)²/(2σ_i²) ] form. All three slices
// must share the same length.
func GaussianLogLikelihood(observations, predictions, uncertainties []float64) (float64, error) {
	if len(observations) != len(predictions) || len(observations) != len(uncertainties) {
		return 0, ErrDimensionMismatch
	}
	const halfLog2Pi = 0.9189385332046727 // 0.5*ln(2π)
	var sum float64
	for i := range observations {
		sigma := uncertainties[i]
		resid := observations[i] - predictions[i]
		sum += -halfLog2Pi - math.Log(sigma) - 0.5*(resid*resid)/(sigma*sigma)
	}
	return sum, nil
}
