package handler

import (
	"testing"
	"time"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func newAuthorizedRepo(userID int64) *testutil.MockUserRepository {
	repo := new(testutil.MockUserRepository)
	repo.On("EnsureUserExists", userID).Return(nil)
	repo.On("IsAuthorized", userID).Return(true, nil)
	return repo
}

func TestHandleText_DuringGame(t *testing.T) {
	repo := newAuthorizedRepo(123)
	h := newTestHandler(t, repo, "")

	_, err := h.sessions.Start(123)
	require.NoError(t, err)
	h.SetState(123, &domain.StateData{State: domain.StatePlaying})

	c := &fakeContext{sender: &tele.User{ID: 123}, text: "casa"}
	require.NoError(t, h.handleText(c))

	require.Len(t, c.sent, 1)
	assert.Equal(t, "👆 Tap the picture that matches the word.", c.sent[0])
	assert.Equal(t, domain.StatePlaying, h.GetState(123).State)
	repo.AssertExpectations(t)
}

func TestHandleText_AfterSessionEvicted(t *testing.T) {
	repo := newAuthorizedRepo(123)
	h := newTestHandler(t, repo, "")

	_, err := h.sessions.Start(123)
	require.NoError(t, err)
	h.SetState(123, &domain.StateData{State: domain.StatePlaying})

	// Negative idle time puts the cutoff in the future, so every session is stale
	require.Equal(t, 1, h.sessions.EvictIdle(-time.Minute))

	c := &fakeContext{sender: &tele.User{ID: 123}, text: "casa"}
	require.NoError(t, h.handleText(c))

	require.Len(t, c.sent, 1)
	assert.Equal(t, mainMenuText, c.sent[0])
	assert.Equal(t, domain.StateIdle, h.GetState(123).State)
	repo.AssertExpectations(t)
}

func TestHandleText_WrongPassword(t *testing.T) {
	repo := new(testutil.MockUserRepository)
	repo.On("EnsureUserExists", int64(5)).Return(nil)
	repo.On("IsAuthorized", int64(5)).Return(false, nil)
	h := newTestHandler(t, repo, "")

	c := &fakeContext{sender: &tele.User{ID: 5}, text: "guess"}
	require.NoError(t, h.handleText(c))

	require.Len(t, c.sent, 1)
	assert.Equal(t, "❌ Wrong password", c.sent[0])
	repo.AssertNotCalled(t, "AuthorizeUser", int64(5))
}
