package quiz

import (
	"errors"
	"fmt"

	"vocabquiz/internal/domain"
)

var (
	// ErrConfiguration means no quiz session can be built from the given inputs
	ErrConfiguration = errors.New("quiz configuration error")
	// ErrInvalidState means an operation was called out of sequence
	ErrInvalidState = errors.New("quiz invalid state")
)

// PresentationPort is implemented by whatever displays the quiz to the player
type PresentationPort interface {
	ShowPrompt(entry domain.WordEntry)
	OnCorrect()
	OnWrong()
	UpdateScoreDisplay(streak, highScore int)
}

// RoundController drives one question at a time and tracks the streak.
// It is not safe for concurrent use; hosts serialize calls per player.
type RoundController struct {
	bank      []domain.WordEntry
	random    RandomSource[domain.WordEntry]
	presenter PresentationPort

	phase domain.RoundPhase
	state domain.RoundState
}

// NewRoundController creates a controller over a fixed, non-empty word bank
func NewRoundController(
	bank []domain.WordEntry,
	random RandomSource[domain.WordEntry],
	presenter PresentationPort,
) (*RoundController, error) {
	if len(bank) == 0 {
		return nil, fmt.Errorf("%w: word bank is empty", ErrConfiguration)
	}
	if random == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrConfiguration)
	}
	if presenter == nil {
		return nil, fmt.Errorf("%w: presenter is required", ErrConfiguration)
	}

	own := make([]domain.WordEntry, len(bank))
	copy(own, bank)

	return &RoundController{
		bank:      own,
		random:    random,
		presenter: presenter,
		phase:     domain.PhaseAwaitingPrompt,
	}, nil
}

// StartOrAdvance picks the next prompt and shows it
func (c *RoundController) StartOrAdvance() {
	prompt := c.random.Pick(c.bank)

	c.state.CurrentPrompt = &prompt
	c.phase = domain.PhaseAwaitingAnswer

	c.presenter.ShowPrompt(prompt)
}

// SubmitAnswer scores response against the current prompt's translation.
// The prompt stays current until StartOrAdvance is called again.
func (c *RoundController) SubmitAnswer(response string) (domain.AnswerResult, error) {
	if c.phase != domain.PhaseAwaitingAnswer || c.state.CurrentPrompt == nil {
		return 0, fmt.Errorf("%w: no active prompt", ErrInvalidState)
	}

	// Exact match: no case folding, no trimming
	if response == c.state.CurrentPrompt.Translation {
		c.state.Streak++
		if c.state.Streak > c.state.HighScore {
			c.state.HighScore = c.state.Streak
		}
		c.presenter.OnCorrect()
		c.presenter.UpdateScoreDisplay(c.state.Streak, c.state.HighScore)
		return domain.AnswerCorrect, nil
	}

	c.state.Streak = 0
	c.presenter.OnWrong()
	c.presenter.UpdateScoreDisplay(c.state.Streak, c.state.HighScore)
	return domain.AnswerWrong, nil
}

// Phase returns the current position in the round loop
func (c *RoundController) Phase() domain.RoundPhase {
	return c.phase
}

// State returns a copy of the round state
func (c *RoundController) State() domain.RoundState {
	s := c.state
	if s.CurrentPrompt != nil {
		prompt := *s.CurrentPrompt
		s.CurrentPrompt = &prompt
	}
	return s
}

// Bank returns a copy of the word bank
func (c *RoundController) Bank() []domain.WordEntry {
	out := make([]domain.WordEntry, len(c.bank))
	copy(out, c.bank)
	return out
}
