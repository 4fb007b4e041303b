package quiz

import "vocabquiz/internal/domain"

// Frame is what a Screen has accumulated since the last flush
type Frame struct {
	Prompt    *domain.WordEntry
	Feedback  domain.AnswerResult
	Streak    int
	HighScore int

	// Round numbers the prompt; filled in by hosts that track rounds
	Round int
}

// Screen is a PresentationPort that buffers output for hosts which render
// whole messages rather than reacting to each call
type Screen struct {
	prompt    *domain.WordEntry
	feedback  domain.AnswerResult
	streak    int
	highScore int
}

// NewScreen creates an empty screen showing a zero score
func NewScreen() *Screen {
	return &Screen{}
}

func (s *Screen) ShowPrompt(entry domain.WordEntry) {
	s.prompt = &entry
}

func (s *Screen) OnCorrect() {
	s.feedback = domain.AnswerCorrect
}

func (s *Screen) OnWrong() {
	s.feedback = domain.AnswerWrong
}

func (s *Screen) UpdateScoreDisplay(streak, highScore int) {
	s.streak = streak
	s.highScore = highScore
}

// Flush returns the pending frame and clears prompt and feedback.
// The displayed score carries over to the next frame.
func (s *Screen) Flush() Frame {
	f := Frame{
		Prompt:    s.prompt,
		Feedback:  s.feedback,
		Streak:    s.streak,
		HighScore: s.highScore,
	}
	s.prompt = nil
	s.feedback = 0
	return f
}
