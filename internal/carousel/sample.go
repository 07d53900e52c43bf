package carousel

import (
	"math/rand/v2"
	"sync"

	"github.com/exclusive-store/server/internal/model"
)

// DefaultSampleSize is how many products are drawn for the carousel.
const DefaultSampleSize = 10

// Sampler selects a subset of a product list.
type Sampler interface {
	Sample(src model.ProductList, n int) model.ProductList
}

// RandomSampler draws up to n products uniformly at random without replacement.
// Flags on the drawn products are kept as they are in src.
type RandomSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSampler uses the process-wide random source.
func NewRandomSampler() *RandomSampler {
	return &RandomSampler{}
}

// NewSeededSampler returns a sampler with a deterministic sequence.
func NewSeededSampler(seed uint64) *RandomSampler {
	return &RandomSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandomSampler) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Sample returns min(n, len(src)) entries of src. src is not modified.
func (s *RandomSampler) Sample(src model.ProductList, n int) model.ProductList {
	if n <= 0 || len(src) == 0 {
		return model.ProductList{}
	}
	pool := src.Clone()
	if n > len(pool) {
		n = len(pool)
	}
	// partial Fisher-Yates: the first n slots end up holding the draw
	for i := 0; i < n; i++ {
		j := i + s.intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n]
}

var _ Sampler = (*RandomSampler)(nil)
