package quiz

import "math/rand"

// RandomSource picks one element uniformly from a non-empty slice
type RandomSource[T any] interface {
	Pick(items []T) T
}

// MathRandSource is a seeded RandomSource backed by math/rand
type MathRandSource[T any] struct {
	rng *rand.Rand
}

// NewRandomSource creates a source; equal seeds produce equal sequences
func NewRandomSource[T any](seed int64) *MathRandSource[T] {
	return &MathRandSource[T]{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly chosen element. It panics on an empty slice.
func (s *MathRandSource[T]) Pick(items []T) T {
	if len(items) == 0 {
		panic("quiz: pick from empty slice")
	}
	return items[s.rng.Intn(len(items))]
}
