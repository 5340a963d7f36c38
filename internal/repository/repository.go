// Package repository defines read access to historical quotation data. The
// estimation subsystems consume these interfaces; concrete backends live in
// the memory, sqlite and postgres subpackages.
package repository

import (
	"context"
	"time"
)

// TrainingRow is one historical quotation line joined with its product. Rows
// whose product reference is missing never appear here; every backend performs
// an inner join (or the in-memory equivalent) between line items and products.
type TrainingRow struct {
	Quantity        int
	WidthFt         float64
	HeightFt        float64
	UnitPrice       float64
	LineTotal       float64
	Category        string
	BaseCostPerSqft float64
}

// QuoteRecord is a single quotation belonging to a customer.
type QuoteRecord struct {
	ID          int64
	TotalAmount float64
	Timestamp   time.Time
}

// CustomerHistory is a customer together with their quotations. Quote order is
// unspecified; callers re-sort as needed.
type CustomerHistory struct {
	CustomerID int64
	Name       string
	Quotes     []QuoteRecord
}

// Repository provides the historical reads the estimators depend on. It is
// read-only from the core's perspective.
type Repository interface {
	// TrainingRows returns every line item joined with its product's category
	// and base cost. May be empty.
	TrainingRows(ctx context.Context) ([]TrainingRow, error)

	// CustomerHistories returns every customer with their quotations. Customers
	// without quotations are included with an empty Quotes slice.
	CustomerHistories(ctx context.Context) ([]CustomerHistory, error)
}
