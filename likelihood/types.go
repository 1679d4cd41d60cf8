package likelihood

// Model produces predictions for a parameter vector theta, optionally
// consulting covariates fixed at construction time. ZeroModel is the
// no-op implementation for likelihoods that compute log L(theta) directly
// without any notion of predictions (e.g. the Gaussian-shell, Rosenbrock,
// and egg-box test likelihoods of spec.md §8).
type Model interface {
	// Predict returns the model's prediction vector for theta. ZeroModel
	// returns (nil, nil).
	Predict(theta []float64) ([]float64, error)
}

// Func computes log L(theta) given theta and the model's predictions for
// theta (predictions is nil/empty when the Model is a ZeroModel).
type Func func(theta []float64, predictions []float64) (float64, error)

// ZeroModel is the Model used when a likelihood does not consult any
// covariates or predictions.
type ZeroModel struct{}

// Predict always returns (nil, nil).
func (ZeroModel) Predict(theta []float64) ([]float64, error) { return nil, nil }

// Likelihood evaluates a log-likelihood function against a Model.
type Likelihood struct {
	model Model
	fn    Func
}

// New constructs a Likelihood from a Model and a log-likelihood Func. If
// model is nil, ZeroModel{} is used.
func New(model Model, fn Func) *Likelihood {
	if model == nil {
		model = ZeroModel{}
	}
	return &Likelihood{model: model, fn: fn}
}
