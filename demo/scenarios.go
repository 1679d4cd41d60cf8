package demo

import (
	"math"

	"github.com/katalvlaran/multinest/likelihood"
	"github.com/katalvlaran/multinest/prior"
)

// Scenario bundles the prior and likelihood for one benchmark problem,
// ready to pass to nested.NewConfig.
type Scenario struct {
	Prior      *prior.Joint
	Likelihood *likelihood.Likelihood
}

// GaussianShell returns the D=2 shell-likelihood scenario: a ring of
// high likelihood at radius r from center c with Gaussian width w,
// log L = log Normal(|theta - c|; r, w), on a uniform box prior.
func GaussianShell(center [2]float64, radius, width float64, box [2][2]float64) (*Scenario, error) {
	joint, err := uniformBox(box)
	if err != nil {
		return nil, err
	}
	fn := func(theta, _ []float64) (float64, error) {
		dx := theta[0] - center[0]
		dy := theta[1] - center[1]
		dist := math.Hypot(dx, dy)
		delta := dist - radius
		logL := -0.5*delta*delta/(width*width) - math.Log(width) - 0.5*math.Log(2*math.Pi)
		return logL, nil
	}
	return &Scenario{Prior: joint, Likelihood: likelihood.New(nil, fn)}, nil
}

// Rosenbrock returns the classic banana-valley likelihood
// log L = -((1-x)^2 + 100*(y-x^2)^2) on the [-3,4]x[-2,10] box spec.md §8
// names, whose maximum sits at (1,1).
func Rosenbrock() (*Scenario, error) {
	joint, err := uniformBox([2][2]float64{{-3, 4}, {-2, 10}})
	if err != nil {
		return nil, err
	}
	fn := func(theta, _ []float64) (float64, error) {
		x, y := theta[0], theta[1]
		a := 1 - x
		b := y - x*x
		return -(a*a + 100*b*b), nil
	}
	return &Scenario{Prior: joint, Likelihood: likelihood.New(nil, fn)}, nil
}

// EggBox returns the multi-modal log L = (2 + cos(x/2)cos(y/2))^5 on
// [0,10*pi]^2, whose 18 equal-height peaks exercise multi-ellipsoid
// clustering (spec.md §8 expects k-means to select k >= 4 by iteration 1000).
func EggBox() (*Scenario, error) {
	bound := 10 * math.Pi
	joint, err := uniformBox([2][2]float64{{0, bound}, {0, bound}})
	if err != nil {
		return nil, err
	}
	fn := func(theta, _ []float64) (float64, error) {
		x, y := theta[0], theta[1]
		base := 2 + math.Cos(x/2)*math.Cos(y/2)
		return math.Pow(base, 5), nil
	}
	return &Scenario{Prior: joint, Likelihood: likelihood.New(nil, fn)}, nil
}

func uniformBox(box [2][2]float64) (*prior.Joint, error) {
	coords := make([]prior.Prior, len(box))
	for i, bounds := range box {
		p, err := prior.NewUniform(bounds[0], bounds[1])
		if err != nil {
			return nil, err
		}
		coords[i] = p
	}
	return prior.NewJoint(coords...)
}
