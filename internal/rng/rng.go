package rng

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_sampler.go github.com/mokutan/stagepass/internal/rng Sampler

// Sampler provides the randomness behind the song lottery and the sequence
// number shuffle.
type Sampler interface {
	// Sample returns k distinct indices drawn uniformly from [0, n).
	Sample(n, k int) []int

	// Shuffle randomizes the order of n elements via the swap function.
	Shuffle(n int, swap func(i, j int))
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Source implements Sampler using math/rand
type Source struct {
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Source{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Sample returns k distinct indices drawn uniformly from [0, n)
func (s *Source) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k < 0 {
		k = 0
	}
	return s.random.Perm(n)[:k]
}

// Shuffle randomizes the order of n elements via the swap function
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.random.Shuffle(n, swap)
}
