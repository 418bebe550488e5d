package selection

import (
	"math"
	"sort"
)

// StrategyResult is the outcome of one Select call, with indices mapped back
// to row identifiers by the caller when a Dataset is in play.
type StrategyResult struct {
	Strategy string   `json:"strategy"`
	Indices  []int    `json:"indices"`
	IDs      []string `json:"ids,omitempty"`
	Score    float64  `json:"score"`
}

// SizeSummary aggregates the baseline samples drawn at one subset size.
type SizeSummary struct {
	Size  int     `json:"size"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	P5    float64 `json:"p5"`
	P50   float64 `json:"p50"`
	P95   float64 `json:"p95"`
}

// RunSummary bundles all outputs of a selection run for reporting: one result
// per requested strategy plus the baseline distribution, both summarized and
// raw.
type RunSummary struct {
	Results  []StrategyResult `json:"results"`
	Baseline []SizeSummary    `json:"baseline,omitempty"`
	Samples  []Sample         `json:"samples,omitempty"`
}

// Summarize groups baseline samples by resolved subset size and reports the
// count, mean, and 5th/50th/95th percentile of each group, ordered by size.
func Summarize(samples []Sample) []SizeSummary {
	bySize := make(map[int][]float64)
	for _, s := range samples {
		bySize[s.Size] = append(bySize[s.Size], s.Score)
	}

	sizes := make([]int, 0, len(bySize))
	for size := range bySize {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	out := make([]SizeSummary, 0, len(sizes))
	for _, size := range sizes {
		scores := bySize[size]
		sort.Float64s(scores)
		out = append(out, SizeSummary{
			Size:  size,
			Count: len(scores),
			Mean:  meanOf(scores),
			P5:    percentile(scores, 5),
			P50:   percentile(scores, 50),
			P95:   percentile(scores, 95),
		})
	}
	return out
}

// percentile computes the p-th percentile of sorted data by linear
// interpolation between closest ranks.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	rank := p / 100.0 * float64(n-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper || upper >= n {
		return sorted[lower]
	}
	return sorted[lower] + (sorted[upper]-sorted[lower])*(rank-float64(lower))
}

func meanOf(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}
