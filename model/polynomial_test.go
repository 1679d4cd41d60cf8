package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multinest/model"
)

func TestPolynomialPredictLinear(t *testing.T) {
	p, err := model.NewPolynomial([]float64{0, 1, 2, 3}, 1)
	require.NoError(t, err)

	// f(x) = offset + a*x, theta = [a, offset] = [2, 1].
	pred, err := p.Predict([]float64{2, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 5, 7}, pred)
}

func TestPolynomialPredictRejectsShortTheta(t *testing.T) {
	p, err := model.NewPolynomial([]float64{0, 1}, 2)
	require.NoError(t, err)
	_, err = p.Predict([]float64{1})
	require.ErrorIs(t, err, model.ErrTooFewParameters)
}
