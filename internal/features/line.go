// Package features converts raw line items and customer histories into the
// flat numeric and categorical records the estimators consume.
package features

import (
	"github.com/jonathan/quote-insights/internal/repository"
	"github.com/jonathan/quote-insights/internal/types"
)

// UnknownCategory is used when a draft line carries no category. The encoder
// maps categories unseen at training time to an all-zero encoding, so this is
// safe at inference time.
const UnknownCategory = "Unknown"

// LineFeature is the per-line record fed to the price model. Derived
// transiently per quote line; never persisted.
type LineFeature struct {
	Category        string
	Area            float64
	Quantity        int
	BaseCostPerSqft float64
}

// FromLineItem derives a LineFeature from a draft line item, applying the
// documented defaults: category "Unknown", quantity 1, base cost 0, and zero
// area when either dimension is missing.
func FromLineItem(item types.LineItem) LineFeature {
	category := item.Category
	if category == "" {
		category = UnknownCategory
	}
	quantity := item.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return LineFeature{
		Category:        category,
		Area:            item.Area(),
		Quantity:        quantity,
		BaseCostPerSqft: item.BaseCostPerSqft,
	}
}

// FromTrainingRow derives a LineFeature from a historical line row.
func FromTrainingRow(row repository.TrainingRow) LineFeature {
	return LineFeature{
		Category:        row.Category,
		Area:            row.WidthFt * row.HeightFt,
		Quantity:        row.Quantity,
		BaseCostPerSqft: row.BaseCostPerSqft,
	}
}
