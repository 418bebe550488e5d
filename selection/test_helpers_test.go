package selection

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// twoBlobMatrix builds the canonical 10x3 scenario: rows 0-4 jittered around
// the origin, rows 5-9 jittered around (10, 10, 10). The jitter keeps the
// descriptor columns linearly independent so leverage is computable.
func twoBlobMatrix() *mat.Dense {
	data := []float64{
		0.0, 0.1, -0.1,
		0.2, -0.1, 0.0,
		-0.1, 0.2, 0.1,
		0.1, 0.0, 0.2,
		-0.2, -0.2, -0.1,
		10.0, 10.1, 9.9,
		10.2, 9.9, 10.0,
		9.9, 10.2, 10.1,
		10.1, 10.0, 10.2,
		9.8, 9.8, 9.9,
	}
	return mat.NewDense(10, 3, data)
}

// randomMatrix builds an n x d matrix of standard-normal draws from a fixed
// seed.
func randomMatrix(n, d int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*d)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return mat.NewDense(n, d, data)
}

// newTestEngine fits an engine on raw with a fixed key, failing the test on
// any construction error.
func newTestEngine(t *testing.T, raw mat.Matrix) *Engine {
	t.Helper()
	eng, err := NewEngine(raw, NewSelectionKey(42))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return eng
}

// containsIndex reports whether indices contains idx.
func containsIndex(indices []int, idx int) bool {
	for _, v := range indices {
		if v == idx {
			return true
		}
	}
	return false
}

// assertDistinctInRange fails unless indices holds exactly want distinct
// values in [0, n).
func assertDistinctInRange(t *testing.T, indices []int, want, n int) {
	t.Helper()
	if len(indices) != want {
		t.Fatalf("got %d indices, want %d", len(indices), want)
	}
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			t.Errorf("index %d out of range [0, %d)", idx, n)
		}
		if seen[idx] {
			t.Errorf("duplicate index %d", idx)
		}
		seen[idx] = true
	}
}
