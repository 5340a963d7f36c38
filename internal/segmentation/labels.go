// Package segmentation clusters customers by quotation history and assigns
// human-readable tier labels.
package segmentation

import (
	"fmt"
	"sort"
)

// Weights of the cluster ranking score. Higher total value dominates, then
// frequency, then recency.
const (
	totalValueWeight  = 0.6
	totalQuotesWeight = 0.3
	recencyWeight     = 0.1
)

// baseLabels are assigned to clusters in descending score order. Clusters
// beyond the list get a generic "Segment N" label.
var baseLabels = []string{"High-Value Frequent", "Occasional", "Dormant/Low"}

// clusterStats aggregates the mean feature values of one cluster.
type clusterStats struct {
	cluster       int
	totalValue    float64
	totalQuotes   float64
	daysSinceLast float64
}

// labelClusters ranks clusters by a weighted composite of their mean total
// value, mean quote count, and mean recency, and maps each cluster id to a
// label. Ranks are ascending with minimum-rank tie handling, so the scoring is
// stable under ties.
func labelClusters(stats []clusterStats) map[int]string {
	totalValues := make([]float64, len(stats))
	totalQuotes := make([]float64, len(stats))
	recency := make([]float64, len(stats))
	for i, s := range stats {
		totalValues[i] = s.totalValue
		totalQuotes[i] = s.totalQuotes
		recency[i] = -s.daysSinceLast
	}

	valueRanks := minimumRanks(totalValues)
	quoteRanks := minimumRanks(totalQuotes)
	recencyRanks := minimumRanks(recency)

	type scored struct {
		cluster int
		score   float64
	}
	ranked := make([]scored, len(stats))
	for i, s := range stats {
		ranked[i] = scored{
			cluster: s.cluster,
			score:   valueRanks[i]*totalValueWeight + quoteRanks[i]*totalQuotesWeight + recencyRanks[i]*recencyWeight,
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	labels := make(map[int]string, len(ranked))
	for i, r := range ranked {
		if i < len(baseLabels) {
			labels[r.cluster] = baseLabels[i]
		} else {
			labels[r.cluster] = fmt.Sprintf("Segment %d", i+1)
		}
	}
	return labels
}

// minimumRanks returns 1-based ascending ranks where tied values all receive
// the smallest rank of their group.
func minimumRanks(values []float64) []float64 {
	ranks := make([]float64, len(values))
	for i, v := range values {
		rank := 1
		for _, other := range values {
			if other < v {
				rank++
			}
		}
		ranks[i] = float64(rank)
	}
	return ranks
}
