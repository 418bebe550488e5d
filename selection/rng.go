package selection

import (
	"hash/fnv"
	"math/rand"
)

// === SelectionKey ===

// SelectionKey uniquely identifies a reproducible selection run.
// Two runs with the same SelectionKey and identical inputs MUST produce
// bit-for-bit identical random selections and baseline samples.
type SelectionKey int64

// NewSelectionKey creates a SelectionKey from a seed value.
func NewSelectionKey(seed int64) SelectionKey {
	return SelectionKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemSelect is the RNG subsystem feeding the random strategy in
	// Select calls. Uses the master seed directly so that a single-seed
	// caller reproduces a bare rand.New(rand.NewSource(seed)) draw.
	SubsystemSelect = "select"

	// SubsystemBaseline is the RNG subsystem feeding the baseline simulator.
	SubsystemBaseline = "baseline"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemSelect: uses the master seed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Isolation means draws in one subsystem never advance another subsystem's
// sequence: simulating a baseline between two Select calls does not change
// what the second Select draws.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PartitionedRNG struct {
	key        SelectionKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SelectionKey.
func NewPartitionedRNG(key SelectionKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemSelect {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SelectionKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SelectionKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
