package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/quote-insights/internal/repository"
	"github.com/jonathan/quote-insights/internal/types"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestFromLineItem_Defaults(t *testing.T) {
	f := FromLineItem(types.LineItem{})

	assert.Equal(t, UnknownCategory, f.Category)
	assert.Equal(t, 1, f.Quantity)
	assert.Equal(t, 0.0, f.Area)
	assert.Equal(t, 0.0, f.BaseCostPerSqft)
}

func TestFromLineItem_Area(t *testing.T) {
	f := FromLineItem(types.LineItem{
		Category:        "Casement Window",
		Quantity:        3,
		WidthFt:         floatPtr(2.5),
		HeightFt:        floatPtr(4.0),
		BaseCostPerSqft: 32.5,
	})

	assert.Equal(t, "Casement Window", f.Category)
	assert.Equal(t, 3, f.Quantity)
	assert.InDelta(t, 10.0, f.Area, 1e-9)
	assert.Equal(t, 32.5, f.BaseCostPerSqft)
}

func TestFromLineItem_MissingDimensionMeansZeroArea(t *testing.T) {
	f := FromLineItem(types.LineItem{WidthFt: floatPtr(3.0)})
	assert.Equal(t, 0.0, f.Area)

	f = FromLineItem(types.LineItem{HeightFt: floatPtr(3.0)})
	assert.Equal(t, 0.0, f.Area)
}

func TestFromTrainingRow(t *testing.T) {
	f := FromTrainingRow(repository.TrainingRow{
		Quantity:        2,
		WidthFt:         3.0,
		HeightFt:        5.0,
		Category:        "Bay Window",
		BaseCostPerSqft: 40.0,
	})

	assert.Equal(t, "Bay Window", f.Category)
	assert.Equal(t, 2, f.Quantity)
	assert.InDelta(t, 15.0, f.Area, 1e-9)
	assert.Equal(t, 40.0, f.BaseCostPerSqft)
}
