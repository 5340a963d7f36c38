// Package clustering provides the standardization and k-means primitives used
// by customer segmentation. Everything here is deterministic given fixed
// inputs and a fixed seed.
package clustering

import "math"

// Standardize rescales each column to zero mean and unit variance. Columns
// with zero variance are left centered but unscaled so they cannot produce
// NaNs. Returns a new matrix; the input is not modified.
func Standardize(points [][]float64) [][]float64 {
	n := len(points)
	if n == 0 {
		return nil
	}
	dims := len(points[0])

	means := make([]float64, dims)
	for _, p := range points {
		for j, v := range p {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= float64(n)
	}

	stds := make([]float64, dims)
	for _, p := range points {
		for j, v := range p {
			d := v - means[j]
			stds[j] += d * d
		}
	}
	for j := range stds {
		stds[j] = math.Sqrt(stds[j] / float64(n))
		if stds[j] == 0 {
			stds[j] = 1
		}
	}

	out := make([][]float64, n)
	for i, p := range points {
		row := make([]float64, dims)
		for j, v := range p {
			row[j] = (v - means[j]) / stds[j]
		}
		out[i] = row
	}
	return out
}
