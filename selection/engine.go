package selection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Engine holds the fitted selection state for a single dataset: the
// standardized feature matrix and the per-row leverage vector, both computed
// once at construction and read-only afterward. One Engine per dataset;
// independent Engines share nothing and need no locking. The only mutable
// state is the partitioned RNG feeding the random strategy, so an Engine is
// meant for sequential reuse, not concurrent calls.
type Engine struct {
	x   *mat.Dense // standardized N×D feature matrix
	h   []float64  // hat-matrix diagonal, one entry per row
	rng *PartitionedRNG
}

// NewEngine fits an Engine on the raw (non-standardized) descriptor matrix.
// Construction standardizes every column to zero mean and unit population
// variance, then computes row leverages from the hat-matrix diagonal.
//
// Returns ErrInvalidInput for an empty or non-finite matrix and
// ErrSingularCovariance when the standardized columns are collinear (this
// includes zero-variance input columns, which standardize to all-zero). A
// failed construction leaves no usable Engine.
func NewEngine(raw mat.Matrix, key SelectionKey) (*Engine, error) {
	x, err := standardize(raw)
	if err != nil {
		return nil, err
	}
	h, err := leverages(x)
	if err != nil {
		return nil, err
	}
	return &Engine{
		x:   x,
		h:   h,
		rng: NewPartitionedRNG(key),
	}, nil
}

// Len returns the number of rows (candidate structures) in the dataset.
func (e *Engine) Len() int {
	n, _ := e.x.Dims()
	return n
}

// Dims returns the row and descriptor counts of the fitted matrix.
func (e *Engine) Dims() (n, d int) {
	return e.x.Dims()
}

// Leverages returns a copy of the per-row leverage vector.
func (e *Engine) Leverages() []float64 {
	out := make([]float64, len(e.h))
	copy(out, e.h)
	return out
}

// resolveCount maps the caller's n to an effective surrogate count: values in
// (0, 1) are a fraction of the population (rounded to nearest, minimum 1),
// values >= 1 are a raw count. Anything resolving outside [1, N] fails with
// ErrInvalidCount.
func (e *Engine) resolveCount(n float64) (int, error) {
	total := e.Len()
	var eff int
	switch {
	case n > 0 && n < 1:
		eff = int(math.Round(n * float64(total)))
		if eff < 1 {
			eff = 1
		}
	default:
		eff = int(math.Round(n))
	}
	if eff < 1 || eff > total {
		return 0, fmt.Errorf("%w: n=%v resolves to %d surrogates, need between 1 and %d", ErrInvalidCount, n, eff, total)
	}
	return eff, nil
}

// Select picks surrogates with the given strategy and returns their row
// indices together with the subset's LARD score. n is a raw count when >= 1
// and a fraction of the dataset when in (0, 1).
//
// Unknown strategy names fall back to random selection rather than erroring;
// validate against ValidStrategies first when that matters.
func (e *Engine) Select(n float64, strategy Strategy) ([]int, float64, error) {
	eff, err := e.resolveCount(n)
	if err != nil {
		return nil, 0, err
	}

	var surrogates []int
	switch strategy {
	case StrategyLowest:
		surrogates = lowestN(e.h, eff)
	case StrategyHighest:
		surrogates = highestN(e.h, eff)
	case StrategyBalanced:
		surrogates = balancedN(e.h, eff)
	case StrategyHierarchical:
		surrogates = hierarchicalN(e.x, eff)
	default:
		surrogates = randomN(e.rng.ForSubsystem(SubsystemSelect), e.Len(), eff)
	}

	score, err := e.Score(surrogates)
	if err != nil {
		return nil, 0, err
	}
	return surrogates, score, nil
}
