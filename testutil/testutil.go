package testutil

import (
	"cmp"
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/simspace"
	"github.com/hupe1980/simspace/vmath"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Dense returns a random dense vector of the given dimensionality with
// values in [-1, 1).
func Dense[T simspace.Float](r *RNG, dim int) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]T, dim)
	for i := range vec {
		vec[i] = T(2*r.rand.Float64() - 1)
	}

	return vec
}

// SparseElems returns a random sparse vector with count elements,
// sorted by strictly increasing index drawn from [0, maxIndex).
// count must not exceed maxIndex.
func SparseElems[T simspace.Float](r *RNG, maxIndex uint32, count int) []vmath.SparseElem[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[uint32]struct{}, count)
	indices := make([]uint32, 0, count)
	for len(indices) < count {
		idx := uint32(r.rand.Intn(int(maxIndex)))
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		indices = append(indices, idx)
	}

	elems := make([]vmath.SparseElem[T], count)
	for i, idx := range indices {
		elems[i] = vmath.SparseElem[T]{Index: idx, Value: T(2*r.rand.Float64() - 1)}
	}
	slices.SortFunc(elems, func(a, b vmath.SparseElem[T]) int {
		return cmp.Compare(a.Index, b.Index)
	})

	return elems
}
