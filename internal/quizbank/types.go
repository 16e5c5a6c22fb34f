package quizbank

// Difficulty is one of the five fixed difficulty bands a question belongs to.
type Difficulty string

const (
	VeryEasy Difficulty = "very_easy"
	Easy     Difficulty = "easy"
	Medium   Difficulty = "medium"
	Hard     Difficulty = "hard"
	VeryHard Difficulty = "very_hard"
)

// Difficulties returns all bands in ascending order of hardness.
func Difficulties() []Difficulty {
	return []Difficulty{VeryEasy, Easy, Medium, Hard, VeryHard}
}

// Rank returns the 0-based position of d in the ascending difficulty order.
// Unknown difficulties rank below very_easy.
func (d Difficulty) Rank() int {
	switch d {
	case VeryEasy:
		return 0
	case Easy:
		return 1
	case Medium:
		return 2
	case Hard:
		return 3
	case VeryHard:
		return 4
	default:
		return -1
	}
}

// Label returns the human-readable form of d, e.g. "Very Easy".
func (d Difficulty) Label() string {
	switch d {
	case VeryEasy:
		return "Very Easy"
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case VeryHard:
		return "Very Hard"
	default:
		return string(d)
	}
}

// AnswerFormat describes how the learner provides their answer.
type AnswerFormat string

const (
	// FormatNumeric means the learner types a numeric answer.
	FormatNumeric AnswerFormat = "numeric"

	// FormatMultipleChoice means the learner picks from 4 choices.
	FormatMultipleChoice AnswerFormat = "multiple_choice"
)

// Question is a single diagnostic question from the bank.
type Question struct {
	// ID is unique across the whole bank.
	ID string `json:"id"`

	// Topic is the bank topic this question belongs to.
	Topic string `json:"topic"`

	// Text is the prompt displayed to the learner. Plain ASCII.
	Text string `json:"text"`

	// Format indicates how the learner answers this question.
	Format AnswerFormat `json:"format"`

	// Choices is populated only when Format is FormatMultipleChoice.
	// Contains exactly 4 options, one of which matches Answer.
	Choices []string `json:"choices,omitempty"`

	// Answer is the canonical correct answer as a string.
	Answer string `json:"answer"`

	// Difficulty is the band this question was authored for.
	Difficulty Difficulty `json:"difficulty"`

	// Explanation is a brief worked solution shown after the learner answers.
	Explanation string `json:"explanation,omitempty"`
}
