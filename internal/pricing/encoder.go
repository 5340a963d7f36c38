// Package pricing owns the quote price model: training it from historical
// line rows, persisting it as a versioned artifact, caching it in process
// memory, and predicting draft quote totals.
package pricing

import "sort"

// CategoryEncoder is a one-hot encoding fitted over the category values
// observed at training time. Categories unseen at inference time encode to
// all zeros, never an error.
type CategoryEncoder struct {
	categories []string
	index      map[string]int
}

// NewCategoryEncoder fits an encoder over the given category values.
// Duplicates are collapsed and the resulting vocabulary is sorted so that two
// trainings over the same data produce identical encodings.
func NewCategoryEncoder(values []string) *CategoryEncoder {
	seen := make(map[string]bool)
	var categories []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			categories = append(categories, v)
		}
	}
	sort.Strings(categories)

	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c] = i
	}
	return &CategoryEncoder{categories: categories, index: index}
}

// encoderFromCategories rebuilds an encoder from a persisted vocabulary,
// preserving the stored order.
func encoderFromCategories(categories []string) *CategoryEncoder {
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c] = i
	}
	return &CategoryEncoder{categories: categories, index: index}
}

// Categories returns the fitted vocabulary in encoding order.
func (e *CategoryEncoder) Categories() []string {
	out := make([]string, len(e.categories))
	copy(out, e.categories)
	return out
}

// Width returns the length of the one-hot segment.
func (e *CategoryEncoder) Width() int {
	return len(e.categories)
}

// Encode returns the one-hot vector for a category. Unknown categories map to
// the all-zero vector.
func (e *CategoryEncoder) Encode(category string) []float64 {
	vec := make([]float64, len(e.categories))
	if i, ok := e.index[category]; ok {
		vec[i] = 1
	}
	return vec
}
