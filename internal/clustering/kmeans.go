package clustering

import (
	"math"
	"math/rand"
	"sort"
)

const (
	// kmeansRestarts matches the classic n_init=10 behavior: run several
	// seeded initializations and keep the partition with the lowest inertia.
	kmeansRestarts = 10
	kmeansMaxIter  = 300
	kmeansTol      = 1e-6
)

// Result is a fitted k-means partition.
type Result struct {
	// Assignments maps each input point to its cluster id in [0, K).
	Assignments []int
	// Centroids are the final cluster centers.
	Centroids [][]float64
	// Inertia is the total within-cluster squared distance.
	Inertia float64
	// K is the effective cluster count, which may be lower than requested when
	// there are fewer points than clusters.
	K int
}

// KMeans partitions points into at most k clusters by minimizing
// within-cluster variance. Initial centers are chosen k-means++ style from a
// seeded generator over a canonical ordering of the points, so the result
// depends only on the multiset of points, never on their input order.
func KMeans(points [][]float64, k int, seed int64) Result {
	n := len(points)
	if n == 0 || k <= 0 {
		return Result{}
	}
	if k > n {
		k = n
	}

	canonical := canonicalOrder(points)

	best := Result{Inertia: math.Inf(1)}
	rng := rand.New(rand.NewSource(seed))
	for restart := 0; restart < kmeansRestarts; restart++ {
		centroids := seedCentroids(points, canonical, k, rng)
		res := lloyd(points, centroids, k)
		if res.Inertia < best.Inertia {
			best = res
		}
	}
	return best
}

// canonicalOrder returns point indices sorted lexicographically by coordinates
// so that seeding is invariant under permutation of the input.
func canonicalOrder(points [][]float64) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := points[order[a]], points[order[b]]
		for j := range pa {
			if pa[j] != pb[j] {
				return pa[j] < pb[j]
			}
		}
		return false
	})
	return order
}

// seedCentroids picks k initial centers with the k-means++ heuristic,
// walking candidates in canonical order.
func seedCentroids(points [][]float64, canonical []int, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	centroids := make([][]float64, 0, k)
	first := canonical[rng.Intn(n)]
	centroids = append(centroids, clonePoint(points[first]))

	dists := make([]float64, n)
	for len(centroids) < k {
		total := 0.0
		for _, idx := range canonical {
			d := math.Inf(1)
			for _, c := range centroids {
				if dd := squaredDistance(points[idx], c); dd < d {
					d = dd
				}
			}
			dists[idx] = d
			total += d
		}

		var chosen int
		if total == 0 {
			// All remaining points coincide with a center; take the first
			// canonical point not yet used as a center.
			chosen = canonical[len(centroids)%n]
		} else {
			target := rng.Float64() * total
			acc := 0.0
			chosen = canonical[n-1]
			for _, idx := range canonical {
				acc += dists[idx]
				if acc >= target {
					chosen = idx
					break
				}
			}
		}
		centroids = append(centroids, clonePoint(points[chosen]))
	}
	return centroids
}

// lloyd iterates assignment and centroid updates until movement drops below
// tolerance or the iteration cap is hit.
func lloyd(points [][]float64, centroids [][]float64, k int) Result {
	n := len(points)
	dims := len(points[0])
	assignments := make([]int, n)

	for iter := 0; iter < kmeansMaxIter; iter++ {
		for i, p := range points {
			bestCluster := 0
			bestDist := math.Inf(1)
			for c, centroid := range centroids {
				if d := squaredDistance(p, centroid); d < bestDist {
					bestDist = d
					bestCluster = c
				}
			}
			assignments[i] = bestCluster
		}

		next := make([][]float64, k)
		counts := make([]int, k)
		for c := range next {
			next[c] = make([]float64, dims)
		}
		for i, p := range points {
			c := assignments[i]
			counts[c]++
			for j, v := range p {
				next[c][j] += v
			}
		}
		for c := range next {
			if counts[c] == 0 {
				// Re-seed an emptied cluster on the point farthest from its
				// current centroid.
				far, farDist := 0, -1.0
				for i, p := range points {
					if d := squaredDistance(p, centroids[assignments[i]]); d > farDist {
						far, farDist = i, d
					}
				}
				copy(next[c], points[far])
				counts[c] = 1
				assignments[far] = c
				continue
			}
			for j := range next[c] {
				next[c][j] /= float64(counts[c])
			}
		}

		moved := 0.0
		for c := range centroids {
			moved += squaredDistance(centroids[c], next[c])
		}
		centroids = next
		if moved < kmeansTol {
			break
		}
	}

	inertia := 0.0
	for i, p := range points {
		inertia += squaredDistance(p, centroids[assignments[i]])
	}
	return Result{Assignments: assignments, Centroids: centroids, Inertia: inertia, K: k}
}

func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func clonePoint(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)
	return out
}
