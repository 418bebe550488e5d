// Package selection implements the chemical-space surrogate selection engine.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - engine.go: Engine construction (standardization + leverage fit) and Select
//   - strategy.go: the five selection strategies and count resolution
//   - score.go: the LARD representativeness metric
//
// # Architecture
//
// An Engine is fitted once per dataset: the raw descriptor matrix is
// standardized column-wise (standardize.go) and the statistical leverage of
// every row is computed from the hat-matrix diagonal (leverage.go). Both are
// read-only after construction, so a single Engine can serve any number of
// Select, Score, and Simulate calls against the same dataset.
//
// Strategies rank or cluster rows of the fitted matrix:
//   - random: uniform draw without replacement from the injected RNG
//   - lowest / highest: partial selection on the leverage vector
//   - balanced: half highest-leverage, half lowest-leverage
//   - hierarchical: Ward agglomerative clustering plus per-cluster medoids
//     (cluster.go) — the expensive strategy, superlinear in row count
//
// Any candidate subset is scored with LARD, the leverage-weighted mean
// Euclidean distance from each point to its nearest surrogate; lower is
// better. The baseline simulator (simulate.go) repeats random selection at
// several subset sizes to give a strategy's score an empirical reference
// distribution.
//
// Randomness is deterministic per master seed and partitioned per subsystem
// (rng.go), so baseline draws never perturb strategy draws.
package selection
