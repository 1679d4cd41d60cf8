package prior

import "math"

var negInf = math.Inf(-1)

// logDiff returns ln(a-b); callers guarantee a>b.
func logDiff(a, b float64) float64 {
	return math.Log(a - b)
}
