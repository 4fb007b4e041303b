package handler

import (
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseAnswerData extracts the entry ID and round from an answer button's data
func parseAnswerData(data string) (string, int, bool) {
	data = cleanCallbackData(data)
	if !strings.HasPrefix(data, answerPrefix) {
		return "", 0, false
	}
	// Unique and payload are joined with "|" by telebot
	entryID, payload, _ := strings.Cut(strings.TrimPrefix(data, answerPrefix), "|")
	if entryID == "" {
		return "", 0, false
	}
	round, err := strconv.Atoi(payload)
	if err != nil {
		return "", 0, false
	}
	return entryID, round, true
}

// isNotModified reports a Telegram edit that left the message unchanged
func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

// acknowledge answers the callback, showing the first non-nil ack as a toast
func acknowledge(c tele.Context, ack ...*tele.CallbackResponse) error {
	for _, r := range ack {
		if r != nil {
			return c.Respond(r)
		}
	}
	return c.Respond()
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message.
// ack, when given, is the callback answer the caller wanted to show.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64, ack ...*tele.CallbackResponse) error {
	if err == nil {
		return nil
	}

	// The next frame can render exactly like the current one
	if isNotModified(err) {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		if ackErr := acknowledge(c, ack...); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := acknowledge(c, ack...); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks that have no registered button handler
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons whose Unique didn't come through
	switch data {
	case btnPlay.Unique:
		return h.handlePlay(c)
	case btnStop.Unique:
		return h.handleStop(c)
	case btnMainMenu.Unique:
		return h.handleStart(c)
	}

	if entryID, round, ok := parseAnswerData(data); ok {
		return h.handleAnswer(c, entryID, round)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
