package selection

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// wardClusters partitions the N rows of x into k clusters by agglomerative
// clustering with Ward linkage over Euclidean distances. Cluster distances
// are maintained with the Lance-Williams recurrence on squared distances:
//
//	d²(l, i∪j) = ((n_i+n_l)·d²(l,i) + (n_j+n_l)·d²(l,j) − n_l·d²(i,j)) / (n_i+n_j+n_l)
//
// so each merge is the pair whose union least increases within-cluster
// variance. Merge ties are broken by the lowest cluster-index pair, which
// makes the clustering deterministic.
//
// Cost is O(N²) memory for the distance matrix and O(N³) time worst case;
// this is the expensive path behind the hierarchical strategy, so large N
// with large k means noticeably higher latency than the ranking strategies.
//
// Returned clusters are ordered by their smallest member index; members
// within a cluster are in ascending row order.
func wardClusters(x *mat.Dense, k int) [][]int {
	n, _ := x.Dims()

	// Squared Euclidean distances between singleton clusters.
	d2 := make([][]float64, n)
	for i := range d2 {
		d2[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := floats.Distance(x.RawRowView(i), x.RawRowView(j), 2)
			d2[i][j] = dist * dist
			d2[j][i] = d2[i][j]
		}
	}

	active := make([]bool, n)
	size := make([]int, n)
	members := make([][]int, n)
	for i := 0; i < n; i++ {
		active[i] = true
		size[i] = 1
		members[i] = []int{i}
	}

	for remaining := n; remaining > k; remaining-- {
		// Closest active pair (bi, bj), bi < bj.
		bi, bj := -1, -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if d2[i][j] < best {
					best = d2[i][j]
					bi, bj = i, j
				}
			}
		}

		// Merge bj into bi and update distances to every other cluster.
		for l := 0; l < n; l++ {
			if !active[l] || l == bi || l == bj {
				continue
			}
			ni, nj, nl := float64(size[bi]), float64(size[bj]), float64(size[l])
			d2[bi][l] = ((ni+nl)*d2[bi][l] + (nj+nl)*d2[bj][l] - nl*d2[bi][bj]) / (ni + nj + nl)
			d2[l][bi] = d2[bi][l]
		}
		members[bi] = append(members[bi], members[bj]...)
		size[bi] += size[bj]
		active[bj] = false
		members[bj] = nil
	}

	clusters := make([][]int, 0, k)
	for i := 0; i < n; i++ {
		if active[i] {
			sort.Ints(members[i])
			clusters = append(clusters, members[i])
		}
	}
	return clusters
}

// medoid returns the member of the cluster closest to the cluster's centroid
// in standardized feature space. Equidistant members resolve to the lowest
// row index (members arrive in ascending order and only a strictly smaller
// distance displaces the current best).
func medoid(x *mat.Dense, members []int) int {
	if len(members) == 1 {
		return members[0]
	}
	_, d := x.Dims()

	centroid := make([]float64, d)
	for _, m := range members {
		floats.Add(centroid, x.RawRowView(m))
	}
	floats.Scale(1/float64(len(members)), centroid)

	best := members[0]
	bestDist := math.Inf(1)
	for _, m := range members {
		dist := floats.Distance(x.RawRowView(m), centroid, 2)
		if dist < bestDist {
			bestDist = dist
			best = m
		}
	}
	return best
}

// hierarchicalN selects one medoid per Ward cluster, yielding exactly n
// indices. Singleton clusters contribute their only member.
func hierarchicalN(x *mat.Dense, n int) []int {
	clusters := wardClusters(x, n)
	out := make([]int, len(clusters))
	for i, mem := range clusters {
		out[i] = medoid(x, mem)
	}
	return out
}
