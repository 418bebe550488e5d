package selection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Score computes the LARD (Leveraged Averaged Representative Distance) of a
// candidate surrogate subset: for every row of the dataset, the Euclidean
// distance in standardized feature space to its nearest subset member,
// weighted by that row's leverage, summed and divided by the row count.
//
// Lower is better; zero exactly when every row is itself a surrogate. Subset
// members contribute zero distance. Growing a subset can only shrink each
// row's nearest distance, so Score is monotone non-increasing under subset
// growth.
//
// Fails with ErrInvalidSubset when subset is empty or contains an
// out-of-range index.
func (e *Engine) Score(subset []int) (float64, error) {
	n := e.Len()
	if len(subset) == 0 {
		return 0, fmt.Errorf("%w: subset is empty", ErrInvalidSubset)
	}
	for _, s := range subset {
		if s < 0 || s >= n {
			return 0, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidSubset, s, n)
		}
	}

	var total float64
	for i := 0; i < n; i++ {
		row := e.x.RawRowView(i)
		nearest := math.Inf(1)
		for _, s := range subset {
			if s == i {
				nearest = 0
				break
			}
			if d := floats.Distance(row, e.x.RawRowView(s), 2); d < nearest {
				nearest = d
			}
		}
		total += e.h[i] * nearest
	}
	return total / float64(n), nil
}
