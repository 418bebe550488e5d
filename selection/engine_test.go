package selection

import (
	"errors"
	"math"
	"testing"
)

func TestSelect_AllStrategies_DistinctInRange(t *testing.T) {
	// GIVEN a 12-row engine
	eng := newTestEngine(t, randomMatrix(12, 3, 31))

	// WHEN every strategy selects every valid count
	for strategy := range ValidStrategies {
		for n := 1; n <= 12; n++ {
			indices, score, err := eng.Select(float64(n), strategy)
			if err != nil {
				t.Fatalf("Select(%d, %s) failed: %v", n, strategy, err)
			}

			// THEN the result is exactly n distinct in-range indices with a
			// non-negative score
			assertDistinctInRange(t, indices, n, 12)
			if score < 0 {
				t.Errorf("Select(%d, %s): negative score %v", n, strategy, score)
			}
		}
	}
}

func TestSelect_Hierarchical_FullPopulation(t *testing.T) {
	// GIVEN a 10-row engine
	eng := newTestEngine(t, twoBlobMatrix())

	// WHEN all 10 surrogates are selected hierarchically
	indices, score, err := eng.Select(10, StrategyHierarchical)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	// THEN every row is its own singleton medoid and the score is zero
	assertDistinctInRange(t, indices, 10, 10)
	if score != 0 {
		t.Errorf("full-population score: got %v, want 0", score)
	}
}

func TestSelect_Hierarchical_TwoBlobScenario(t *testing.T) {
	// GIVEN the two-blob engine
	eng := newTestEngine(t, twoBlobMatrix())

	// WHEN 2 surrogates are selected hierarchically
	indices, score, err := eng.Select(2, StrategyHierarchical)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	// THEN one surrogate comes from each blob
	assertDistinctInRange(t, indices, 2, 10)
	if indices[0]/5 == indices[1]/5 {
		t.Fatalf("hierarchical selection %v drew both surrogates from one blob", indices)
	}

	// THEN the score beats any same-blob pair
	sameBlob, err := eng.Score([]int{1, 2})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if score >= sameBlob {
		t.Errorf("hierarchical score %v not lower than same-blob score %v", score, sameBlob)
	}
}

func TestSelect_FractionalLowest(t *testing.T) {
	// GIVEN a 10-row engine
	eng := newTestEngine(t, randomMatrix(10, 3, 37))

	// WHEN half the dataset is selected by lowest leverage
	indices, _, err := eng.Select(0.5, StrategyLowest)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	// THEN exactly 5 indices come back, all with leverage <= any excluded row
	assertDistinctInRange(t, indices, 5, 10)
	h := eng.Leverages()
	maxSel := 0.0
	for _, idx := range indices {
		if h[idx] > maxSel {
			maxSel = h[idx]
		}
	}
	for i, v := range h {
		if !containsIndex(indices, i) && v < maxSel {
			t.Errorf("excluded row %d has leverage %v below selected max %v", i, v, maxSel)
		}
	}
}

func TestSelect_FractionalMinimumOne(t *testing.T) {
	// GIVEN a 10-row engine
	eng := newTestEngine(t, randomMatrix(10, 3, 37))

	// WHEN a fraction rounding to zero is requested
	indices, _, err := eng.Select(0.01, StrategyLowest)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	// THEN the fractional floor of one surrogate applies
	assertDistinctInRange(t, indices, 1, 10)
}

func TestSelect_InvalidCounts(t *testing.T) {
	eng := newTestEngine(t, randomMatrix(10, 3, 41))

	tests := []struct {
		name string
		n    float64
	}{
		{"zero", 0},
		{"negative count", -3},
		{"negative fraction", -0.5},
		{"beyond population", 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := eng.Select(tt.n, StrategyRandom)
			if !errors.Is(err, ErrInvalidCount) {
				t.Fatalf("Select(%v): got error %v, want ErrInvalidCount", tt.n, err)
			}
		})
	}
}

func TestSelect_Random_DeterministicPerKey(t *testing.T) {
	// GIVEN two engines fitted on the same data with the same key
	raw := randomMatrix(20, 3, 43)
	eng1, err := NewEngine(raw, NewSelectionKey(7))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	eng2, err := NewEngine(raw, NewSelectionKey(7))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	// WHEN both run the same sequence of random selections
	for call := 0; call < 3; call++ {
		got1, _, err := eng1.Select(5, StrategyRandom)
		if err != nil {
			t.Fatalf("Select failed: %v", err)
		}
		got2, _, err := eng2.Select(5, StrategyRandom)
		if err != nil {
			t.Fatalf("Select failed: %v", err)
		}

		// THEN the draws are identical call by call
		for i := range got1 {
			if got1[i] != got2[i] {
				t.Fatalf("call %d: draws diverged: %v vs %v", call, got1, got2)
			}
		}
	}
}

func TestSelect_UnknownStrategy_FallsBackToRandom(t *testing.T) {
	// GIVEN two engines with the same key
	raw := randomMatrix(15, 3, 47)
	eng1, err := NewEngine(raw, NewSelectionKey(9))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	eng2, err := NewEngine(raw, NewSelectionKey(9))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	// WHEN one selects with an unknown strategy and the other with random
	gotUnknown, _, err := eng1.Select(4, Strategy("bogus"))
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	gotRandom, _, err := eng2.Select(4, StrategyRandom)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	// THEN the unknown strategy behaved exactly like random
	for i := range gotUnknown {
		if gotUnknown[i] != gotRandom[i] {
			t.Fatalf("unknown strategy drew %v, random drew %v", gotUnknown, gotRandom)
		}
	}
}

func TestSelect_FailedCall_LeavesEngineUsable(t *testing.T) {
	// GIVEN an engine that has rejected an invalid count
	eng := newTestEngine(t, randomMatrix(10, 3, 53))
	if _, _, err := eng.Select(0, StrategyLowest); err == nil {
		t.Fatal("Select(0) succeeded, want error")
	}

	// WHEN retried with corrected arguments
	indices, score, err := eng.Select(3, StrategyLowest)

	// THEN the fitted state is untouched and the call succeeds
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	assertDistinctInRange(t, indices, 3, 10)
	if math.IsNaN(score) {
		t.Error("retry returned NaN score")
	}
}
