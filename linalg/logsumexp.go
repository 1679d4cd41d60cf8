package linalg

import "math"

// LogAddExp returns log(exp(x)+exp(y)) without overflow, grounded on the
// classic log-sum-exp trick (original_source's MathExtra::logExpSum).
func LogAddExp(x, y float64) float64 {
	if x >= y {
		return x + math.Log1p(math.Exp(y-x))
	}
	return y + math.Log1p(math.Exp(x-y))
}
