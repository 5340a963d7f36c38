package features

import (
	"math"
	"sort"
	"time"

	"github.com/jonathan/quote-insights/internal/repository"
)

// DaysSinceLastSentinel marks customers with no quotation history as
// essentially inactive.
const DaysSinceLastSentinel = 10000

// CustomerFeatures is the per-customer record fed to the segmenter.
// Recomputed fresh on every segmentation request; never persisted.
type CustomerFeatures struct {
	CustomerID    int64
	CustomerName  string
	TotalQuotes   int
	TotalValue    float64
	AvgValue      float64
	DaysSinceLast int
}

// BuildCustomerFeatures derives one CustomerFeatures record per history.
// Quotes are considered most-recent-first; naive timestamps are treated as UTC.
func BuildCustomerFeatures(histories []repository.CustomerHistory, now time.Time) []CustomerFeatures {
	out := make([]CustomerFeatures, 0, len(histories))
	for _, h := range histories {
		quotes := make([]repository.QuoteRecord, len(h.Quotes))
		copy(quotes, h.Quotes)
		sort.Slice(quotes, func(i, j int) bool {
			return quotes[i].Timestamp.After(quotes[j].Timestamp)
		})

		f := CustomerFeatures{
			CustomerID:    h.CustomerID,
			CustomerName:  h.Name,
			TotalQuotes:   len(quotes),
			DaysSinceLast: DaysSinceLastSentinel,
		}
		if len(quotes) > 0 {
			total := 0.0
			for _, q := range quotes {
				total += q.TotalAmount
			}
			f.TotalValue = roundTo(total, 2)
			f.AvgValue = roundTo(total/float64(len(quotes)), 2)
			if !quotes[0].Timestamp.IsZero() {
				days := int(now.UTC().Sub(quotes[0].Timestamp.UTC()).Hours() / 24)
				if days < 0 {
					days = 0
				}
				f.DaysSinceLast = days
			}
		}
		out = append(out, f)
	}
	return out
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
