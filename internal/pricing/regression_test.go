package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitLinear_RecoversKnownCoefficients(t *testing.T) {
	// y = 3x1 - 2x2 + 5
	X := [][]float64{
		{1, 1},
		{2, 0},
		{0, 3},
		{4, 2},
		{5, 5},
	}
	y := make([]float64, len(X))
	for i, row := range X {
		y[i] = 3*row[0] - 2*row[1] + 5
	}

	weights, intercept, err := fitLinear(X, y)
	require.NoError(t, err)
	require.Len(t, weights, 2)
	assert.InDelta(t, 3.0, weights[0], 1e-4)
	assert.InDelta(t, -2.0, weights[1], 1e-4)
	assert.InDelta(t, 5.0, intercept, 1e-4)
}

func TestFitLinear_CollinearOneHotColumns(t *testing.T) {
	// Two one-hot columns that sum to the intercept column. The ridge term
	// must keep the system solvable and the fit exact on the training points.
	X := [][]float64{
		{1, 0, 2},
		{1, 0, 4},
		{0, 1, 1},
		{0, 1, 3},
	}
	y := []float64{10, 14, 22, 26} // cat A: 2x+6, cat B: 2x+20

	weights, intercept, err := fitLinear(X, y)
	require.NoError(t, err)

	for i, row := range X {
		pred := intercept
		for j, w := range weights {
			pred += w * row[j]
		}
		assert.InDelta(t, y[i], pred, 1e-3)
	}
}

func TestFitLinear_EmptyInput(t *testing.T) {
	_, _, err := fitLinear(nil, nil)
	assert.Error(t, err)
}

func TestFitLinear_MismatchedRowWidth(t *testing.T) {
	_, _, err := fitLinear([][]float64{{1, 2}, {3}}, []float64{1, 2})
	assert.Error(t, err)
}
