package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/quiz"

	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("quiz session not found")
	ErrUnknownEntry    = errors.New("unknown word entry")
	// ErrStaleRound means the answer was given for a prompt that is no longer current
	ErrStaleRound      = errors.New("answer for a past round")
)

// session is one player's round controller and the screen it draws on
type session struct {
	mu         sync.Mutex
	controller *quiz.RoundController
	screen     *quiz.Screen
	round      int // Incremented each time a prompt is shown
	lastSeen   time.Time
}

// SessionService keeps a quiz session per Telegram user
type SessionService struct {
	bank    []domain.WordEntry
	entries map[string]domain.WordEntry
	logger  *zap.Logger

	newSource func() quiz.RandomSource[domain.WordEntry]
	now       func() time.Time

	sessions map[int64]*session
	mu       sync.RWMutex
}

// NewSessionService creates a session service over a validated word bank
func NewSessionService(bank []domain.WordEntry, logger *zap.Logger) (*SessionService, error) {
	if err := ValidateBank(bank); err != nil {
		return nil, err
	}

	own := make([]domain.WordEntry, len(bank))
	copy(own, bank)

	entries := make(map[string]domain.WordEntry, len(own))
	for _, e := range own {
		entries[e.ID] = e
	}

	return &SessionService{
		bank:    own,
		entries: entries,
		logger:  logger,
		newSource: func() quiz.RandomSource[domain.WordEntry] {
			return quiz.NewRandomSource[domain.WordEntry](time.Now().UnixNano())
		},
		now:      time.Now,
		sessions: make(map[int64]*session),
	}, nil
}

// Bank returns the entries players can choose from, in display order
func (s *SessionService) Bank() []domain.WordEntry {
	out := make([]domain.WordEntry, len(s.bank))
	copy(out, s.bank)
	return out
}

// Start opens a session if needed and shows the next prompt
func (s *SessionService) Start(userID int64) (quiz.Frame, error) {
	sess, err := s.getOrCreate(userID)
	if err != nil {
		return quiz.Frame{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.advance(s.now()), nil
}

// Answer scores the tapped entry against the prompt of the given round and advances.
// Taps on buttons from an earlier round are rejected with ErrStaleRound.
func (s *SessionService) Answer(userID int64, entryID string, round int) (quiz.Frame, error) {
	sess, ok := s.get(userID)
	if !ok {
		return quiz.Frame{}, ErrSessionNotFound
	}

	entry, ok := s.entries[entryID]
	if !ok {
		return quiz.Frame{}, fmt.Errorf("%w: %q", ErrUnknownEntry, entryID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if round != sess.round {
		return quiz.Frame{}, fmt.Errorf("%w: got %d, current %d", ErrStaleRound, round, sess.round)
	}

	result, err := sess.controller.SubmitAnswer(entry.Translation)
	if err != nil {
		return quiz.Frame{}, fmt.Errorf("failed to submit answer: %w", err)
	}

	state := sess.controller.State()
	s.logger.Debug("Answer scored",
		zap.Int64("user_id", userID),
		zap.String("entry_id", entryID),
		zap.Stringer("result", result),
		zap.Int("streak", state.Streak),
		zap.Int("high_score", state.HighScore),
	)

	return sess.advance(s.now()), nil
}

// advance shows the next prompt under a new round number. Callers hold sess.mu.
func (sess *session) advance(now time.Time) quiz.Frame {
	sess.controller.StartOrAdvance()
	sess.round++
	sess.lastSeen = now

	frame := sess.screen.Flush()
	frame.Round = sess.round
	return frame
}

// Score returns the player's current round state
func (s *SessionService) Score(userID int64) (domain.RoundState, error) {
	sess, ok := s.get(userID)
	if !ok {
		return domain.RoundState{}, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.controller.State(), nil
}

// End discards the player's session; scores are not kept
func (s *SessionService) End(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[userID]
	delete(s.sessions, userID)
	return ok
}

// Active returns the number of open sessions
func (s *SessionService) Active() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle drops sessions untouched for longer than maxIdle
func (s *SessionService) EvictIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for userID, sess := range s.sessions {
		sess.mu.Lock()
		stale := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()

		if stale {
			delete(s.sessions, userID)
			evicted++
		}
	}

	if evicted > 0 {
		s.logger.Info("Evicted idle quiz sessions",
			zap.Int("evicted", evicted),
			zap.Int("active", len(s.sessions)),
		)
	}
	return evicted
}

func (s *SessionService) get(userID int64) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

func (s *SessionService) getOrCreate(userID int64) (*session, error) {
	if sess, ok := s.get(userID); ok {
		return sess, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess, nil
	}

	screen := quiz.NewScreen()
	controller, err := quiz.NewRoundController(s.bank, s.newSource(), screen)
	if err != nil {
		return nil, err
	}

	sess := &session{
		controller: controller,
		screen:     screen,
		lastSeen:   s.now(),
	}
	s.sessions[userID] = sess

	s.logger.Info("Quiz session opened", zap.Int64("user_id", userID))
	return sess, nil
}
