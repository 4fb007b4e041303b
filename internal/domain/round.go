package domain

// RoundPhase is the controller's position in the question/answer loop
type RoundPhase string

const (
	PhaseAwaitingPrompt RoundPhase = "awaiting_prompt"
	PhaseAwaitingAnswer RoundPhase = "awaiting_answer"
)

// AnswerResult is the outcome of a submitted answer.
// The zero value means no answer has been scored.
type AnswerResult int

const (
	AnswerWrong AnswerResult = iota + 1
	AnswerCorrect
)

func (r AnswerResult) String() string {
	switch r {
	case AnswerCorrect:
		return "correct"
	case AnswerWrong:
		return "wrong"
	default:
		return "none"
	}
}

// RoundState holds the current prompt and score counters
type RoundState struct {
	CurrentPrompt *WordEntry
	Streak        int
	HighScore     int
}
