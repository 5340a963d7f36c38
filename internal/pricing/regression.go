package pricing

import (
	"fmt"
	"math"
)

// ridgeEpsilon keeps the normal equations solvable when the one-hot columns
// and the intercept are collinear. Small enough to stay within the model's
// stated prediction tolerances.
const ridgeEpsilon = 1e-8

// fitLinear fits y ≈ X·w + b by least squares on the normal equations with a
// tiny ridge term. X rows must all have the same length.
func fitLinear(X [][]float64, y []float64) (weights []float64, intercept float64, err error) {
	n := len(X)
	if n == 0 || n != len(y) {
		return nil, 0, fmt.Errorf("regression requires matching non-empty inputs, got %d rows and %d targets", n, len(y))
	}
	p := len(X[0])

	// Augment with an intercept column.
	d := p + 1
	ata := make([][]float64, d)
	for i := range ata {
		ata[i] = make([]float64, d)
	}
	aty := make([]float64, d)

	row := make([]float64, d)
	for r := 0; r < n; r++ {
		if len(X[r]) != p {
			return nil, 0, fmt.Errorf("regression row %d has %d features, want %d", r, len(X[r]), p)
		}
		copy(row, X[r])
		row[p] = 1
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				ata[i][j] += row[i] * row[j]
			}
			aty[i] += row[i] * y[r]
		}
	}
	for i := 0; i < d; i++ {
		ata[i][i] += ridgeEpsilon
	}

	solution, err := solveLinearSystem(ata, aty)
	if err != nil {
		return nil, 0, err
	}
	return solution[:p], solution[p], nil
}

// solveLinearSystem solves A·x = b with Gaussian elimination and partial
// pivoting. A is modified in place.
func solveLinearSystem(a [][]float64, b []float64) ([]float64, error) {
	d := len(a)
	for col := 0; col < d; col++ {
		pivot := col
		for r := col + 1; r < d; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-15 {
			return nil, fmt.Errorf("regression system is singular at column %d", col)
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < d; r++ {
			factor := a[r][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c < d; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	x := make([]float64, d)
	for r := d - 1; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < d; c++ {
			sum -= a[r][c] * x[c]
		}
		x[r] = sum / a[r][r]
	}
	return x, nil
}
