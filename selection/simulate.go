package selection

import "fmt"

// Sample is a single baseline simulation draw: the resolved subset size and
// the LARD score of one random selection at that size.
type Sample struct {
	Size  int     `json:"size"`
	Score float64 `json:"score"`
}

// Simulate builds an empirical reference distribution of LARD scores from
// random selection: for each entry of sizes (count or fraction, resolved like
// Select's n), reps independent random subsets are drawn and scored. The
// returned samples are ordered by size entry then repetition and are not
// aggregated; histogramming or percentiles are the caller's concern (see
// Summarize).
//
// Every invocation draws fresh samples from the baseline RNG subsystem; there
// is no caching, since the draws must be independent across calls. Repeated
// clustering is not involved, but reps×len(sizes) scoring passes over the
// full dataset make this the slowest engine operation; interactive callers
// should run it off the hot path.
func (e *Engine) Simulate(sizes []float64, reps int) ([]Sample, error) {
	if reps < 1 {
		return nil, fmt.Errorf("%w: repetitions must be >= 1, got %d", ErrInvalidCount, reps)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no subset sizes given", ErrInvalidCount)
	}

	// Resolve all sizes up front so a bad entry fails before any draws.
	resolved := make([]int, len(sizes))
	for i, n := range sizes {
		eff, err := e.resolveCount(n)
		if err != nil {
			return nil, err
		}
		resolved[i] = eff
	}

	rng := e.rng.ForSubsystem(SubsystemBaseline)
	samples := make([]Sample, 0, len(resolved)*reps)
	for _, eff := range resolved {
		for r := 0; r < reps; r++ {
			subset := randomN(rng, e.Len(), eff)
			score, err := e.Score(subset)
			if err != nil {
				return nil, err
			}
			samples = append(samples, Sample{Size: eff, Score: score})
		}
	}
	return samples, nil
}
