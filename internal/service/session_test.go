package service

import (
	"sync"
	"testing"
	"time"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/quiz"
	"vocabquiz/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSessionService picks bank entries in the given index order for every session
func newTestSessionService(t *testing.T, indexes ...int) *SessionService {
	t.Helper()

	s, err := NewSessionService(testutil.NewTestBank(), testutil.NewTestLogger())
	require.NoError(t, err)

	s.newSource = func() quiz.RandomSource[domain.WordEntry] {
		return testutil.NewSequenceSource(indexes...)
	}
	return s
}

func TestNewSessionService_EmptyBank(t *testing.T) {
	s, err := NewSessionService(nil, testutil.NewTestLogger())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, quiz.ErrConfiguration)
}

func TestSessionService_Start(t *testing.T) {
	s := newTestSessionService(t, 1, 2)

	frame, err := s.Start(123)
	require.NoError(t, err)
	require.NotNil(t, frame.Prompt)
	assert.Equal(t, "casa", frame.Prompt.Translation)
	assert.Equal(t, domain.AnswerResult(0), frame.Feedback)
	assert.Equal(t, 1, s.Active())

	// Starting again keeps the session and moves to a new prompt
	frame, err = s.Start(123)
	require.NoError(t, err)
	require.NotNil(t, frame.Prompt)
	assert.Equal(t, "automovil", frame.Prompt.Translation)
	assert.Equal(t, 1, s.Active())
}

func TestSessionService_Answer(t *testing.T) {
	tests := []struct {
		name             string
		entryID          string
		expectedFeedback domain.AnswerResult
		expectedStreak   int
	}{
		{
			name:             "correct tap",
			entryID:          "house",
			expectedFeedback: domain.AnswerCorrect,
			expectedStreak:   1,
		},
		{
			name:             "wrong tap",
			entryID:          "tree",
			expectedFeedback: domain.AnswerWrong,
			expectedStreak:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSessionService(t, 1, 3)

			start, err := s.Start(123)
			require.NoError(t, err)

			frame, err := s.Answer(123, tt.entryID, start.Round)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedFeedback, frame.Feedback)
			assert.Equal(t, tt.expectedStreak, frame.Streak)
			require.NotNil(t, frame.Prompt)
			assert.Equal(t, "arbol", frame.Prompt.Translation)

			state, err := s.Score(123)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStreak, state.Streak)
			assert.Equal(t, "arbol", state.CurrentPrompt.Translation)
		})
	}
}

func TestSessionService_AnswerStreak(t *testing.T) {
	s := newTestSessionService(t, 0, 2, 2, 1)

	frame, err := s.Start(7)
	require.NoError(t, err)

	for i, id := range []string{"building", "car", "car"} {
		frame, err = s.Answer(7, id, frame.Round)
		require.NoError(t, err)
		assert.Equal(t, domain.AnswerCorrect, frame.Feedback)
		assert.Equal(t, i+1, frame.Streak)
		assert.Equal(t, i+1, frame.HighScore)
	}

	frame, err = s.Answer(7, "car", frame.Round)
	require.NoError(t, err)
	assert.Equal(t, domain.AnswerWrong, frame.Feedback)
	assert.Equal(t, 0, frame.Streak)
	assert.Equal(t, 3, frame.HighScore)
}

func TestSessionService_RoundNumbers(t *testing.T) {
	s := newTestSessionService(t, 0)

	frame, err := s.Start(1)
	require.NoError(t, err)
	assert.Equal(t, 1, frame.Round)

	frame, err = s.Answer(1, "building", frame.Round)
	require.NoError(t, err)
	assert.Equal(t, 2, frame.Round)

	frame, err = s.Start(1)
	require.NoError(t, err)
	assert.Equal(t, 3, frame.Round)
}

func TestSessionService_DoubleTap(t *testing.T) {
	// car is shown first, then house
	s := newTestSessionService(t, 2, 1)

	frame, err := s.Start(1)
	require.NoError(t, err)
	require.Equal(t, "car", frame.Prompt.ID)
	round := frame.Round

	frame, err = s.Answer(1, "car", round)
	require.NoError(t, err)
	assert.Equal(t, domain.AnswerCorrect, frame.Feedback)
	require.Equal(t, "house", frame.Prompt.ID)

	// The same button arrives again from the message that showed car
	_, err = s.Answer(1, "car", round)
	assert.ErrorIs(t, err, ErrStaleRound)

	state, err := s.Score(1)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Streak)
	assert.Equal(t, 1, state.HighScore)
	assert.Equal(t, "house", state.CurrentPrompt.ID)
}

func TestSessionService_StaleMessageAfterReplay(t *testing.T) {
	s := newTestSessionService(t, 0, 1)

	old, err := s.Start(1)
	require.NoError(t, err)

	// A second /play sends a new message; the first one's buttons are dead
	current, err := s.Start(1)
	require.NoError(t, err)

	_, err = s.Answer(1, "building", old.Round)
	assert.ErrorIs(t, err, ErrStaleRound)

	frame, err := s.Answer(1, "house", current.Round)
	require.NoError(t, err)
	assert.Equal(t, domain.AnswerCorrect, frame.Feedback)
	assert.Equal(t, 1, frame.Streak)
}

func TestSessionService_AnswerErrors(t *testing.T) {
	s := newTestSessionService(t, 0)

	_, err := s.Answer(123, "car", 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	frame, err := s.Start(123)
	require.NoError(t, err)

	_, err = s.Answer(123, "spaceship", frame.Round)
	assert.ErrorIs(t, err, ErrUnknownEntry)

	state, err := s.Score(123)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Streak)
}

func TestSessionService_SessionsAreIndependent(t *testing.T) {
	s := newTestSessionService(t, 0)

	frame, err := s.Start(1)
	require.NoError(t, err)
	_, err = s.Start(2)
	require.NoError(t, err)

	_, err = s.Answer(1, "building", frame.Round)
	require.NoError(t, err)

	one, err := s.Score(1)
	require.NoError(t, err)
	two, err := s.Score(2)
	require.NoError(t, err)

	assert.Equal(t, 1, one.Streak)
	assert.Equal(t, 0, two.Streak)
}

func TestSessionService_End(t *testing.T) {
	s := newTestSessionService(t, 0)

	_, err := s.Start(123)
	require.NoError(t, err)

	assert.True(t, s.End(123))
	assert.False(t, s.End(123))

	_, err = s.Score(123)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_EvictIdle(t *testing.T) {
	s := newTestSessionService(t, 0)

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	_, err := s.Start(1)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	_, err = s.Start(2)
	require.NoError(t, err)

	now = now.Add(15 * time.Minute)

	evicted := s.EvictIdle(30 * time.Minute)

	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, s.Active())

	_, err = s.Score(1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.Score(2)
	assert.NoError(t, err)
}

func TestSessionService_ConcurrentPlayers(t *testing.T) {
	s, err := NewSessionService(testutil.NewTestBank(), testutil.NewTestLogger())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for user := int64(1); user <= 8; user++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()

			frame, err := s.Start(userID)
			if !assert.NoError(t, err) {
				return
			}
			for i := 0; i < 50; i++ {
				frame, err = s.Answer(userID, frame.Prompt.ID, frame.Round)
				if !assert.NoError(t, err) {
					return
				}
			}
		}(user)
	}
	wg.Wait()

	for user := int64(1); user <= 8; user++ {
		state, err := s.Score(user)
		require.NoError(t, err)
		assert.Equal(t, 50, state.Streak)
		assert.Equal(t, 50, state.HighScore)
	}
}
