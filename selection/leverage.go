package selection

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// leverages computes the statistical leverage of every row of the
// standardized matrix x: the diagonal of the hat matrix
//
//	H = X (XᵀX)⁻¹ Xᵀ
//
// Each h_i measures how far row i sits from the feature-space centroid
// relative to the covariance structure; in the well-conditioned case each
// value lies in [0, 1] and the vector sums to the column count.
//
// Fails with ErrSingularCovariance when XᵀX cannot be inverted (duplicate or
// collinear columns, zero-variance columns, or fewer rows than columns).
func leverages(x *mat.Dense) ([]float64, error) {
	n, d := x.Dims()

	var gram mat.Dense
	gram.Mul(x.T(), x)

	var inv mat.Dense
	if err := inv.Inverse(&gram); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularCovariance, err)
	}

	// h_i = x_i (XᵀX)⁻¹ x_iᵀ, one D×D quadratic form per row. This avoids
	// materializing the full N×N hat matrix.
	h := make([]float64, n)
	tmp := make([]float64, d)
	for i := 0; i < n; i++ {
		row := x.RawRowView(i)
		for j := 0; j < d; j++ {
			tmp[j] = floats.Dot(inv.RawRowView(j), row)
		}
		h[i] = floats.Dot(row, tmp)
	}
	return h, nil
}
