package handler

import (
	"errors"
	"strings"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles the password prompt and stray text during a game
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Ensure user exists
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	// If not authorized, check password
	if !authorized {
		if !h.authService.CheckPassword(text) {
			return c.Send("❌ Wrong password")
		}

		if err := h.authService.AuthorizeUser(userID); err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send("Something went wrong. Please try again later.")
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		h.ResetState(userID)
		return c.Send("✅ Access granted!\n\n"+mainMenuText, mainMenuMarkup())
	}

	// Answers are given with buttons, typed words are not scored
	if h.GetState(userID).State == domain.StatePlaying {
		_, err := h.sessions.Score(userID)
		if err == nil {
			return c.Send("👆 Tap the picture that matches the word.")
		}
		// The session was evicted or ended elsewhere
		if !errors.Is(err, service.ErrSessionNotFound) {
			h.logger.Error("Failed to read quiz session", zap.Error(err), zap.Int64("user_id", userID))
		}
		h.ResetState(userID)
	}

	return c.Send(mainMenuText, mainMenuMarkup())
}
