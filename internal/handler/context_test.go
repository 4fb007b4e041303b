package handler

import (
	"testing"

	"vocabquiz/internal/service"
	"vocabquiz/internal/testutil"

	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

// fakeContext records what a handler sends; methods it doesn't override panic
type fakeContext struct {
	tele.Context

	sender   *tele.User
	callback *tele.Callback
	text     string
	editErr  error

	sent      []interface{}
	edited    []interface{}
	responses []*tele.CallbackResponse
}

func (c *fakeContext) Sender() *tele.User       { return c.sender }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }
func (c *fakeContext) Text() string             { return c.text }

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	c.sent = append(c.sent, what)
	return nil
}

func (c *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.editErr != nil {
		return c.editErr
	}
	c.edited = append(c.edited, what)
	return nil
}

func (c *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		c.responses = append(c.responses, &tele.CallbackResponse{})
		return nil
	}
	c.responses = append(c.responses, resp[0])
	return nil
}

func newCallbackContext(userID int64) *fakeContext {
	return &fakeContext{
		sender:   &tele.User{ID: userID},
		callback: &tele.Callback{ID: "cb-1"},
	}
}

func newTestHandler(t *testing.T, userRepo *testutil.MockUserRepository, audioDir string) *Handler {
	t.Helper()

	sessions, err := service.NewSessionService(testutil.NewTestBank(), testutil.NewTestLogger())
	require.NoError(t, err)

	if userRepo == nil {
		userRepo = new(testutil.MockUserRepository)
	}
	auth := service.NewAuthService(userRepo, "secret")

	return NewHandler(nil, auth, sessions, audioDir, testutil.NewTestLogger())
}
