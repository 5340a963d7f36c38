// Package types provides type definitions for structured data used throughout the quote-insights system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// LineItem represents one product entry within a draft quote. Width and height
// are pointers because a draft line may legitimately omit dimensions; the
// consumers treat a missing dimension as zero area (pricing) or "N/A" (narrative).
type LineItem struct {
	Name            string   `json:"name,omitempty"`
	Category        string   `json:"category,omitempty"`
	Quantity        int      `json:"quantity,omitempty" validate:"omitempty,min=1"`
	WidthFt         *float64 `json:"width_ft,omitempty" validate:"omitempty,gte=0"`
	HeightFt        *float64 `json:"height_ft,omitempty" validate:"omitempty,gte=0"`
	BaseCostPerSqft float64  `json:"base_cost_per_sqft,omitempty" validate:"gte=0"`
}

// Area returns width × height, or 0 when either dimension is absent.
func (li *LineItem) Area() float64 {
	if li.WidthFt == nil || li.HeightFt == nil {
		return 0
	}
	return *li.WidthFt * *li.HeightFt
}

// PredictRequest represents the item payload accepted by the price estimator.
type PredictRequest struct {
	Items []LineItem `json:"items" validate:"dive"`
}

// Validate validates the PredictRequest using the validator.
func (r *PredictRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// QuoteNarrative bundles the inputs of the narrative generator. Pure value
// object; never persisted.
type QuoteNarrative struct {
	CustomerName string     `json:"customer_name"`
	Items        []LineItem `json:"items"`
	TotalAmount  float64    `json:"total_amount"`
}
