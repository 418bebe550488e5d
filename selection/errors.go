package selection

import "errors"

// Sentinel errors for the selection engine. Call sites wrap these with
// fmt.Errorf("...: %w", ...) so callers can test with errors.Is.
var (
	// ErrInvalidInput indicates a malformed feature matrix at construction:
	// zero rows, zero columns, ragged rows, or non-finite values.
	ErrInvalidInput = errors.New("invalid feature matrix")

	// ErrSingularCovariance indicates that the descriptor covariance is not
	// invertible, so leverage cannot be computed. Typical causes: duplicate or
	// collinear descriptor columns, zero-variance columns, or fewer rows than
	// columns. The engine does not regularize; drop offending columns and
	// reconstruct.
	ErrSingularCovariance = errors.New("singular descriptor covariance")

	// ErrInvalidCount indicates a surrogate count or fraction that resolves to
	// zero or exceeds the population size.
	ErrInvalidCount = errors.New("invalid surrogate count")

	// ErrInvalidSubset indicates a scoring request on an empty subset or one
	// containing out-of-range row indices.
	ErrInvalidSubset = errors.New("invalid surrogate subset")
)
