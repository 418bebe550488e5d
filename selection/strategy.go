package selection

import "math/rand"

// Strategy identifies a surrogate selection strategy.
type Strategy string

const (
	// StrategyRandom draws surrogates uniformly without replacement.
	StrategyRandom Strategy = "random"
	// StrategyLowest picks the rows with the smallest leverage.
	StrategyLowest Strategy = "lowest"
	// StrategyHighest picks the rows with the largest leverage.
	StrategyHighest Strategy = "highest"
	// StrategyBalanced splits the pick between highest and lowest leverage.
	StrategyBalanced Strategy = "balanced"
	// StrategyHierarchical clusters the feature space and picks one medoid
	// per cluster.
	StrategyHierarchical Strategy = "hierarchical"
)

// ValidStrategies is the set of recognized strategy names. Select itself
// falls back to random for unknown names; callers wanting strict validation
// (config loading, CLI flags) check against this set first.
var ValidStrategies = map[Strategy]bool{
	StrategyRandom:       true,
	StrategyLowest:       true,
	StrategyHighest:      true,
	StrategyBalanced:     true,
	StrategyHierarchical: true,
}

// lowestN returns the indices of the n smallest leverage values.
func lowestN(h []float64, n int) []int {
	idx := newIndexSlice(len(h))
	partialSelect(idx, h, n, false)
	return idx[:n]
}

// highestN returns the indices of the n largest leverage values.
func highestN(h []float64, n int) []int {
	idx := newIndexSlice(len(h))
	partialSelect(idx, h, n, true)
	return idx[:n]
}

// balancedN concatenates the floor(n/2) highest-leverage indices with the
// remaining ceil(n/2) lowest-leverage indices. The two groups are disjoint
// unless n reaches the population size.
func balancedN(h []float64, n int) []int {
	half := n / 2
	out := make([]int, 0, n)
	out = append(out, highestN(h, half)...)
	out = append(out, lowestN(h, n-half)...)
	return out
}

// randomN draws n distinct indices in [0, total) uniformly without
// replacement from rng.
func randomN(rng *rand.Rand, total, n int) []int {
	return rng.Perm(total)[:n]
}

func newIndexSlice(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// partialSelect rearranges idx so that its first n entries are the n smallest
// (or largest, when desc) entries under the leverage ordering. Quickselect
// with a median-of-three pivot: O(N) expected, no full sort. Ties on leverage
// are broken by lower row index, which makes the result deterministic for a
// fixed leverage vector.
func partialSelect(idx []int, h []float64, n int, desc bool) {
	less := func(a, b int) bool {
		if h[a] != h[b] {
			if desc {
				return h[a] > h[b]
			}
			return h[a] < h[b]
		}
		return a < b
	}

	lo, hi := 0, len(idx)-1
	for lo < hi {
		p := partition(idx, lo, hi, less)
		switch {
		case p == n-1:
			return
		case p < n-1:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partition picks a median-of-three pivot from idx[lo..hi], partitions the
// range around it, and returns the pivot's final position.
func partition(idx []int, lo, hi int, less func(a, b int) bool) int {
	mid := lo + (hi-lo)/2
	if less(idx[mid], idx[lo]) {
		idx[lo], idx[mid] = idx[mid], idx[lo]
	}
	if less(idx[hi], idx[lo]) {
		idx[lo], idx[hi] = idx[hi], idx[lo]
	}
	if less(idx[hi], idx[mid]) {
		idx[mid], idx[hi] = idx[hi], idx[mid]
	}
	idx[mid], idx[hi] = idx[hi], idx[mid]

	pivot := idx[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if less(idx[j], pivot) {
			idx[i], idx[j] = idx[j], idx[i]
			i++
		}
	}
	idx[i], idx[hi] = idx[hi], idx[i]
	return i
}
