// Package challenge draws the daily challenge suggestions shown on the home
// screen.
package challenge

import (
	"math/rand/v2"
	"time"

	"github.com/sandeepkv93/diario/internal/model"
)

const DefaultCount = 3

// Sampler draws challenges uniformly without replacement. It is not safe for
// concurrent use.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a deterministic sampler for a non-zero seed and a
// time-seeded one for seed 0.
func NewSampler(seed uint64) *Sampler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewSamplerWithSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func NewSamplerWithSource(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// Sample returns k distinct entries of catalog in random order. k is clamped
// to len(catalog); k <= 0 yields nothing. The catalog is not modified and
// every call is an independent draw.
func (s *Sampler) Sample(catalog []model.Challenge, k int) []model.Challenge {
	if k > len(catalog) {
		k = len(catalog)
	}
	if k <= 0 {
		return []model.Challenge{}
	}
	pool := append([]model.Challenge(nil), catalog...)
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}
