package testutil

import (
	"vocabquiz/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test word entry
func NewTestEntry(id, translation string) domain.WordEntry {
	return domain.WordEntry{
		ID:          id,
		Label:       id,
		Translation: translation,
	}
}

// NewTestBank returns the four words of the city scene
func NewTestBank() []domain.WordEntry {
	return []domain.WordEntry{
		{ID: "building", Label: "🏢 building", Translation: "edificio", AudioFile: "edificio.mp3"},
		{ID: "house", Label: "🏠 house", Translation: "casa", AudioFile: "casa.mp3"},
		{ID: "car", Label: "🚗 car", Translation: "automovil", AudioFile: "auto.mp3"},
		{ID: "tree", Label: "🌳 tree", Translation: "arbol", AudioFile: "arbol.mp3"},
	}
}

// SequenceSource picks items by cycling through fixed indexes
type SequenceSource struct {
	Indexes []int
	next    int
}

// NewSequenceSource creates a deterministic random source
func NewSequenceSource(indexes ...int) *SequenceSource {
	return &SequenceSource{Indexes: indexes}
}

func (s *SequenceSource) Pick(items []domain.WordEntry) domain.WordEntry {
	idx := 0
	if len(s.Indexes) > 0 {
		idx = s.Indexes[s.next%len(s.Indexes)]
		s.next++
	}
	return items[idx%len(items)]
}
