package segmentation

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/quote-insights/internal/repository"
	"github.com/jonathan/quote-insights/internal/repository/memory"
)

var segmentNow = time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)

// tierHistories builds customers in three obvious tiers: big recent spenders,
// mid-range occasional buyers, and customers with no or stale activity.
func tierHistories() []repository.CustomerHistory {
	quote := func(id int64, amount float64, daysAgo int) repository.QuoteRecord {
		return repository.QuoteRecord{ID: id, TotalAmount: amount, Timestamp: segmentNow.AddDate(0, 0, -daysAgo)}
	}
	return []repository.CustomerHistory{
		{CustomerID: 1, Name: "Alice Smith", Quotes: []repository.QuoteRecord{
			quote(1, 8000, 3), quote(2, 9500, 10), quote(3, 7800, 20), quote(4, 8200, 40),
		}},
		{CustomerID: 2, Name: "Bob Jones", Quotes: []repository.QuoteRecord{
			quote(5, 9100, 5), quote(6, 8800, 15), quote(7, 9400, 30), quote(8, 8600, 55),
		}},
		{CustomerID: 3, Name: "Carol Davis", Quotes: []repository.QuoteRecord{
			quote(9, 900, 60), quote(10, 1100, 120),
		}},
		{CustomerID: 4, Name: "David Brown", Quotes: []repository.QuoteRecord{
			quote(11, 1000, 75), quote(12, 850, 140),
		}},
		{CustomerID: 5, Name: "Eve Wilson", Quotes: []repository.QuoteRecord{
			quote(13, 120, 400),
		}},
		{CustomerID: 6, Name: "Frank Moore"},
	}
}

func newTestSegmenter(histories []repository.CustomerHistory) *Segmenter {
	store := memory.NewStore()
	store.AddCustomerHistories(histories...)
	s := NewSegmenter(store)
	s.now = func() time.Time { return segmentNow }
	return s
}

func TestCompute_EmptyRepository(t *testing.T) {
	rows, err := newTestSegmenter(nil).Compute(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestCompute_AssignsTierLabels(t *testing.T) {
	rows, err := newTestSegmenter(tierHistories()).Compute(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	bySegment := map[string][]int64{}
	for _, r := range rows {
		bySegment[r.Segment] = append(bySegment[r.Segment], r.CustomerID)
	}

	// The quoteless customer sits alone: the recency sentinel of 10000 days
	// dominates the standardized distance to everyone else.
	assert.ElementsMatch(t, []int64{1, 2}, bySegment["High-Value Frequent"])
	assert.ElementsMatch(t, []int64{3, 4, 5}, bySegment["Occasional"])
	assert.ElementsMatch(t, []int64{6}, bySegment["Dormant/Low"])
}

func TestCompute_OrderedBySegmentThenValue(t *testing.T) {
	rows, err := newTestSegmenter(tierHistories()).Compute(context.Background(), 3)
	require.NoError(t, err)

	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if prev.Segment == cur.Segment {
			assert.GreaterOrEqual(t, prev.TotalValue, cur.TotalValue)
		} else {
			assert.Less(t, prev.Segment, cur.Segment)
		}
	}
}

func TestCompute_PermutationInvariant(t *testing.T) {
	histories := tierHistories()
	shuffled := make([]repository.CustomerHistory, len(histories))
	copy(shuffled, histories)
	rand.New(rand.NewSource(3)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	a, err := newTestSegmenter(histories).Compute(context.Background(), 3)
	require.NoError(t, err)
	b, err := newTestSegmenter(shuffled).Compute(context.Background(), 3)
	require.NoError(t, err)

	segA := map[int64]string{}
	for _, r := range a {
		segA[r.CustomerID] = r.Segment
	}
	for _, r := range b {
		assert.Equal(t, segA[r.CustomerID], r.Segment, "customer %d", r.CustomerID)
	}
}

func TestCompute_ThreeCustomersThreeTiers(t *testing.T) {
	quote := func(id int64, amount float64, daysAgo int) repository.QuoteRecord {
		return repository.QuoteRecord{ID: id, TotalAmount: amount, Timestamp: segmentNow.AddDate(0, 0, -daysAgo)}
	}
	histories := []repository.CustomerHistory{
		{CustomerID: 1, Name: "Alice Smith", Quotes: []repository.QuoteRecord{
			quote(1, 9000, 2), quote(2, 8500, 12), quote(3, 9200, 25),
		}},
		{CustomerID: 2, Name: "Bob Jones", Quotes: []repository.QuoteRecord{
			quote(4, 1200, 50), quote(5, 900, 110),
		}},
		{CustomerID: 3, Name: "Carol Davis", Quotes: []repository.QuoteRecord{
			quote(6, 150, 350),
		}},
	}

	rows, err := newTestSegmenter(histories).Compute(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	segments := map[int64]string{}
	for _, r := range rows {
		segments[r.CustomerID] = r.Segment
	}
	assert.Equal(t, "High-Value Frequent", segments[1])
	assert.Equal(t, "Occasional", segments[2])
	assert.Equal(t, "Dormant/Low", segments[3])
}

func TestCompute_FewerCustomersThanClusters(t *testing.T) {
	histories := tierHistories()[:2]

	rows, err := newTestSegmenter(histories).Compute(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.NotEmpty(t, r.Segment)
	}
}

func TestCompute_NonPositiveKUsesDefault(t *testing.T) {
	rows, err := newTestSegmenter(tierHistories()).Compute(context.Background(), 0)
	require.NoError(t, err)

	segments := map[string]bool{}
	for _, r := range rows {
		segments[r.Segment] = true
	}
	assert.Len(t, segments, DefaultK)
}
