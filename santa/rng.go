// Package santa - randomness contract and sampling helpers.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//     Callers wanting a fresh draw every run pass a time-derived seed themselves.
//   - No allocations in the sampling hot path.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a Source across goroutines.
package santa

import "math/rand"

// Source is the randomness a draw consumes: uniform integers for the initial
// giver and uniform floats in [0,1) for weighted receiver selection.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewSource returns a deterministic Source.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// pickUniform returns one element of set chosen uniformly. set must be non-empty.
//
// Complexity: O(1).
func pickUniform(src Source, set []int) int {
	return set[src.Intn(len(set))]
}

// pickWeighted samples an index of w with probability w[j]/total, never
// returning skip (pass -1 to allow every index). total must equal the sum of
// w over the allowed indices and be > 0.
//
// Floating-point drift can leave the cumulative sum a hair under the drawn
// value; the last positive allowed index absorbs that remainder.
//
// Complexity: O(len(w)).
func pickWeighted(src Source, w []float64, total float64, skip int) int {
	var (
		u    = src.Float64() * total
		acc  float64
		last = -1
		j    int
		v    float64
	)
	for j, v = range w {
		if j == skip || v <= 0 {
			continue
		}
		acc += v
		last = j
		if u < acc {
			return j
		}
	}
	return last
}
