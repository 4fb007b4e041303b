package service

import (
	"fmt"
	"regexp"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/quiz"
	"vocabquiz/internal/repository"

	"go.uber.org/zap"
)

// Entry IDs travel in Telegram callback data, which is capped at 64 bytes
var entryIDPattern = regexp.MustCompile(`^[-A-Za-z0-9_]{1,32}$`)

// WordBankService loads the fixed word bank at startup
type WordBankService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
}

// NewWordBankService creates a new word bank service
func NewWordBankService(wordRepo repository.WordRepository, logger *zap.Logger) *WordBankService {
	return &WordBankService{
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// LoadBank reads and validates every entry of the word bank
func (s *WordBankService) LoadBank() ([]domain.WordEntry, error) {
	entries, err := s.wordRepo.ListEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to list word entries: %w", err)
	}

	if err := ValidateBank(entries); err != nil {
		return nil, err
	}

	s.logger.Info("Word bank loaded", zap.Int("entries", len(entries)))
	return entries, nil
}

// ValidateBank checks that entries can back a quiz session
func ValidateBank(entries []domain.WordEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: word bank is empty", quiz.ErrConfiguration)
	}

	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if !entryIDPattern.MatchString(e.ID) {
			return fmt.Errorf("%w: entry %d has invalid id %q", quiz.ErrConfiguration, i, e.ID)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: duplicate entry id %q", quiz.ErrConfiguration, e.ID)
		}
		seen[e.ID] = struct{}{}

		if e.Label == "" {
			return fmt.Errorf("%w: entry %q has no label", quiz.ErrConfiguration, e.ID)
		}
		if e.Translation == "" {
			return fmt.Errorf("%w: entry %q has no translation", quiz.ErrConfiguration, e.ID)
		}
	}

	return nil
}
