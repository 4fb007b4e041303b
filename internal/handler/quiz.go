package handler

import (
	"errors"
	"path/filepath"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/quiz"
	"vocabquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handlePlay opens (or continues) the player's session and shows a prompt
func (h *Handler) handlePlay(c tele.Context) error {
	userID := c.Sender().ID

	frame, err := h.sessions.Start(userID)
	if err != nil {
		h.logger.Error("Failed to start quiz", zap.Error(err), zap.Int64("user_id", userID))
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Could not start the game"})
		}
		return c.Send("Could not start the game. Please try again later.")
	}

	h.SetState(userID, &domain.StateData{State: domain.StatePlaying})
	h.logger.Info("Quiz round started",
		zap.Int64("user_id", userID),
		zap.String("prompt", frame.Prompt.ID),
	)

	return h.showFrame(c, frame, nil)
}

// handleAnswer scores a tapped picture and shows the next prompt
func (h *Handler) handleAnswer(c tele.Context, entryID string, round int) error {
	userID := c.Sender().ID

	frame, err := h.sessions.Answer(userID, entryID, round)
	switch {
	case errors.Is(err, service.ErrStaleRound):
		h.logger.Debug("Answer for a past round ignored",
			zap.Int64("user_id", userID),
			zap.String("entry_id", entryID),
			zap.Int("round", round),
		)
		return c.Respond(&tele.CallbackResponse{Text: "That question is already answered"})
	case errors.Is(err, service.ErrSessionNotFound):
		h.ResetState(userID)
		return c.Respond(&tele.CallbackResponse{
			Text:      "This game has expired. Tap Play to start a new one.",
			ShowAlert: true,
		})
	case errors.Is(err, service.ErrUnknownEntry):
		h.logger.Warn("Answer for unknown entry",
			zap.Int64("user_id", userID),
			zap.String("entry_id", entryID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Unknown picture"})
	case err != nil:
		h.logger.Error("Failed to submit answer", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	h.logger.Info("Answer submitted",
		zap.Int64("user_id", userID),
		zap.String("entry_id", entryID),
		zap.Stringer("result", frame.Feedback),
		zap.Int("streak", frame.Streak),
		zap.Int("high_score", frame.HighScore),
	)

	return h.showFrame(c, frame, &tele.CallbackResponse{Text: feedbackText(frame.Feedback)})
}

// handleScore reports the current streak and high score
func (h *Handler) handleScore(c tele.Context) error {
	userID := c.Sender().ID

	state, err := h.sessions.Score(userID)
	if errors.Is(err, service.ErrSessionNotFound) {
		return c.Send("No game in progress. Send /play to start one.")
	}
	if err != nil {
		h.logger.Error("Failed to read score", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Something went wrong. Please try again later.")
	}

	return c.Send(scoreText(state.Streak, state.HighScore))
}

// handleStop ends the session; the score is discarded with it
func (h *Handler) handleStop(c tele.Context) error {
	userID := c.Sender().ID

	text := "⏹ Game over\n\n" + mainMenuText
	if state, err := h.sessions.Score(userID); err == nil {
		text = "⏹ Game over\n\n" + scoreText(state.Streak, state.HighScore) + "\n\n" + mainMenuText
	}

	h.sessions.End(userID)
	h.ResetState(userID)
	h.logger.Info("Quiz stopped", zap.Int64("user_id", userID))

	if c.Callback() != nil {
		if err := c.Edit(text, mainMenuMarkup()); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, mainMenuMarkup())
		}
		return c.Respond()
	}
	return c.Send(text, mainMenuMarkup())
}

// showFrame edits the quiz message in place when possible, then plays the prompt clip
func (h *Handler) showFrame(c tele.Context, frame quiz.Frame, ack *tele.CallbackResponse) error {
	userID := c.Sender().ID
	text, markup := renderFrame(frame, h.sessions.Bank())

	var err error
	if c.Callback() != nil {
		if editErr := c.Edit(text, markup); editErr != nil {
			if handleErr := h.handleEditError(editErr, c, userID, ack); handleErr != nil {
				err = c.Send(text, markup)
			}
		} else {
			err = acknowledge(c, ack)
		}
	} else {
		err = c.Send(text, markup)
	}
	if err != nil {
		return err
	}

	h.sendPromptAudio(c, frame.Prompt)
	return nil
}

// sendPromptAudio sends the clip for the prompt word when audio is configured
func (h *Handler) sendPromptAudio(c tele.Context, prompt *domain.WordEntry) {
	if h.audioDir == "" || prompt == nil || prompt.AudioFile == "" {
		return
	}

	audio := &tele.Audio{
		File:     tele.FromDisk(filepath.Join(h.audioDir, prompt.AudioFile)),
		Title:    prompt.Translation,
		FileName: prompt.AudioFile,
	}
	if err := c.Send(audio); err != nil {
		h.logger.Warn("Failed to send prompt audio",
			zap.Error(err),
			zap.String("entry_id", prompt.ID),
		)
	}
}
