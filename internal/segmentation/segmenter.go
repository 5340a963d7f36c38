package segmentation

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/jonathan/quote-insights/internal/clustering"
	"github.com/jonathan/quote-insights/internal/features"
	"github.com/jonathan/quote-insights/internal/repository"
)

// DefaultK is the default cluster count.
const DefaultK = 3

// randomSeed fixes the k-means initialization so identical inputs always
// produce identical segments.
const randomSeed = 42

// Assignment is one row of the segmentation report.
type Assignment struct {
	CustomerID    int64   `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	Segment       string  `json:"segment"`
	Cluster       int     `json:"cluster"`
	TotalQuotes   int     `json:"total_quotes"`
	TotalValue    float64 `json:"total_value"`
	AvgValue      float64 `json:"avg_value"`
	DaysSinceLast int     `json:"days_since_last"`
}

// Segmenter computes customer segments from quotation history. It keeps no
// cache; every call reads the repository and computes a fresh result, so it is
// safe to run concurrently with itself and with the other estimators.
type Segmenter struct {
	repo repository.Repository
	now  func() time.Time
}

// NewSegmenter creates a segmenter reading history from repo.
func NewSegmenter(repo repository.Repository) *Segmenter {
	return &Segmenter{repo: repo, now: time.Now}
}

// Compute derives per-customer features, standardizes them, partitions the
// customers into at most k clusters, and labels each cluster. Rows come back
// ordered by (segment label, total value descending). Zero customers yield an
// empty, correctly-shaped result without error.
func (s *Segmenter) Compute(ctx context.Context, k int) ([]Assignment, error) {
	if k <= 0 {
		k = DefaultK
	}

	histories, err := s.repo.CustomerHistories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read customer histories: %w", err)
	}
	feats := features.BuildCustomerFeatures(histories, s.now())
	if len(feats) == 0 {
		return []Assignment{}, nil
	}

	points := make([][]float64, len(feats))
	for i, f := range feats {
		points[i] = []float64{
			float64(f.TotalQuotes),
			f.TotalValue,
			f.AvgValue,
			float64(f.DaysSinceLast),
		}
	}

	result := clustering.KMeans(clustering.Standardize(points), k, randomSeed)
	log.Printf("[segmentation] clustered %d customers into %d segments", len(feats), result.K)

	stats := aggregateClusters(feats, result.Assignments, result.K)
	labels := labelClusters(stats)

	rows := make([]Assignment, len(feats))
	for i, f := range feats {
		cluster := result.Assignments[i]
		rows[i] = Assignment{
			CustomerID:    f.CustomerID,
			CustomerName:  f.CustomerName,
			Segment:       labels[cluster],
			Cluster:       cluster,
			TotalQuotes:   f.TotalQuotes,
			TotalValue:    f.TotalValue,
			AvgValue:      f.AvgValue,
			DaysSinceLast: f.DaysSinceLast,
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Segment != rows[j].Segment {
			return rows[i].Segment < rows[j].Segment
		}
		return rows[i].TotalValue > rows[j].TotalValue
	})
	return rows, nil
}

// aggregateClusters computes the mean feature values per cluster.
func aggregateClusters(feats []features.CustomerFeatures, assignments []int, k int) []clusterStats {
	sums := make([]clusterStats, k)
	counts := make([]int, k)
	for i := range sums {
		sums[i].cluster = i
	}
	for i, f := range feats {
		c := assignments[i]
		sums[c].totalValue += f.TotalValue
		sums[c].totalQuotes += float64(f.TotalQuotes)
		sums[c].daysSinceLast += float64(f.DaysSinceLast)
		counts[c]++
	}

	stats := make([]clusterStats, 0, k)
	for c := range sums {
		if counts[c] == 0 {
			continue
		}
		stats = append(stats, clusterStats{
			cluster:       c,
			totalValue:    sums[c].totalValue / float64(counts[c]),
			totalQuotes:   sums[c].totalQuotes / float64(counts[c]),
			daysSinceLast: sums[c].daysSinceLast / float64(counts[c]),
		})
	}
	return stats
}
