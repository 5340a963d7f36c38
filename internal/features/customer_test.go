package features

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/quote-insights/internal/repository"
)

func TestBuildCustomerFeatures_NoQuotes(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	feats := BuildCustomerFeatures([]repository.CustomerHistory{
		{CustomerID: 7, Name: "Alice Smith"},
	}, now)

	require.Len(t, feats, 1)
	assert.Equal(t, int64(7), feats[0].CustomerID)
	assert.Equal(t, 0, feats[0].TotalQuotes)
	assert.Equal(t, 0.0, feats[0].TotalValue)
	assert.Equal(t, 0.0, feats[0].AvgValue)
	assert.Equal(t, DaysSinceLastSentinel, feats[0].DaysSinceLast)
}

func TestBuildCustomerFeatures_TotalsAndRecency(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	feats := BuildCustomerFeatures([]repository.CustomerHistory{
		{
			CustomerID: 1,
			Name:       "Bob Jones",
			Quotes: []repository.QuoteRecord{
				{ID: 1, TotalAmount: 100.0, Timestamp: now.AddDate(0, 0, -30)},
				{ID: 2, TotalAmount: 250.5, Timestamp: now.AddDate(0, 0, -5)},
				{ID: 3, TotalAmount: 49.5, Timestamp: now.AddDate(0, 0, -90)},
			},
		},
	}, now)

	require.Len(t, feats, 1)
	f := feats[0]
	assert.Equal(t, 3, f.TotalQuotes)
	assert.InDelta(t, 400.0, f.TotalValue, 1e-9)
	assert.InDelta(t, 133.33, f.AvgValue, 1e-9)
	// Recency comes from the most recent quote regardless of input order.
	assert.Equal(t, 5, f.DaysSinceLast)
}

func TestBuildCustomerFeatures_FutureTimestampClampsToZero(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	feats := BuildCustomerFeatures([]repository.CustomerHistory{
		{
			CustomerID: 2,
			Name:       "Carol Davis",
			Quotes: []repository.QuoteRecord{
				{ID: 1, TotalAmount: 10.0, Timestamp: now.AddDate(0, 0, 3)},
			},
		},
	}, now)

	require.Len(t, feats, 1)
	assert.Equal(t, 0, feats[0].DaysSinceLast)
}

func TestBuildCustomerFeatures_PartialDayRoundsDown(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	feats := BuildCustomerFeatures([]repository.CustomerHistory{
		{
			CustomerID: 3,
			Name:       "David Brown",
			Quotes: []repository.QuoteRecord{
				{ID: 1, TotalAmount: 10.0, Timestamp: now.Add(-36 * time.Hour)},
			},
		},
	}, now)

	require.Len(t, feats, 1)
	assert.Equal(t, 1, feats[0].DaysSinceLast)
}
