package selection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// standardize rescales every column of the raw descriptor matrix to zero mean
// and unit variance. Variance is the population variance (divide by N, not
// N-1) to match the downstream leverage and distance numerics. Zero-variance
// columns cannot be rescaled and become all-zero instead.
func standardize(raw mat.Matrix) (*mat.Dense, error) {
	n, d := raw.Dims()
	if n == 0 || d == 0 {
		return nil, fmt.Errorf("%w: matrix is %dx%d, need at least one row and one column", ErrInvalidInput, n, d)
	}

	out := mat.NewDense(n, d, nil)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, raw)
		for i, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: non-finite value %v at row %d, column %d", ErrInvalidInput, v, i, j)
			}
		}

		mean := stat.Mean(col, nil)
		var ss float64
		for _, v := range col {
			dev := v - mean
			ss += dev * dev
		}
		sd := math.Sqrt(ss / float64(n))

		if sd == 0 {
			// Constant column: no scale to divide by.
			for i := 0; i < n; i++ {
				out.Set(i, j, 0)
			}
			continue
		}
		for i, v := range col {
			out.Set(i, j, (v-mean)/sd)
		}
	}
	return out, nil
}
