package handler

import (
	"fmt"
	"strconv"
	"strings"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/quiz"

	tele "gopkg.in/telebot.v3"
)

const (
	answerPrefix  = "answer_"
	buttonsPerRow = 2
)

// feedbackText returns the line shown after an answer
func feedbackText(result domain.AnswerResult) string {
	switch result {
	case domain.AnswerCorrect:
		return "✅ ¡Correcto!"
	case domain.AnswerWrong:
		return "❌ Wrong!"
	default:
		return ""
	}
}

func scoreText(streak, highScore int) string {
	return fmt.Sprintf("Streak: %d\nHigh Score: %d", streak, highScore)
}

// renderFrame builds the quiz message: feedback, prompt, score and one button per picture.
// Buttons carry the frame's round so taps on older messages can be told apart.
func renderFrame(f quiz.Frame, bank []domain.WordEntry) (string, *tele.ReplyMarkup) {
	var b strings.Builder

	if fb := feedbackText(f.Feedback); fb != "" {
		b.WriteString(fb)
		b.WriteString("\n\n")
	}
	if f.Prompt != nil {
		b.WriteString("🔊 ")
		b.WriteString(f.Prompt.Translation)
		b.WriteString("\n\n")
	}
	b.WriteString(scoreText(f.Streak, f.HighScore))

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	round := strconv.Itoa(f.Round)
	row := tele.Row{}
	for _, entry := range bank {
		row = append(row, markup.Data(entry.Label, answerPrefix+entry.ID, round))
		if len(row) == buttonsPerRow {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, markup.Row(btnStop))
	markup.Inline(rows...)

	return b.String(), markup
}
