package quizbank

import (
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's input against the correct answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed
// - Comparison is case-insensitive
// - For numeric answers: "007" matches "7", "3.50" matches "3.5"
// - For multiple choice: matches against the choice text or index (1-4)
func CheckAnswer(learnerAnswer string, question Question) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}

	if question.Format == FormatMultipleChoice {
		return checkMultipleChoice(learnerAnswer, question)
	}

	normalizedLearner, ok := normalizeNumeric(learnerAnswer)
	if !ok {
		return false
	}
	normalizedCorrect, ok := normalizeNumeric(question.Answer)
	if !ok {
		return false
	}
	return normalizedLearner == normalizedCorrect
}

// checkMultipleChoice checks the learner's answer against MC choices.
func checkMultipleChoice(learnerAnswer string, question Question) bool {
	// Try matching by index (1-4).
	if idx, err := strconv.Atoi(learnerAnswer); err == nil && idx >= 1 && idx <= len(question.Choices) {
		return strings.EqualFold(
			strings.TrimSpace(question.Choices[idx-1]),
			strings.TrimSpace(question.Answer),
		)
	}

	// Match by text (case-insensitive).
	return strings.EqualFold(
		strings.TrimSpace(learnerAnswer),
		strings.TrimSpace(question.Answer),
	)
}

// normalizeNumeric canonicalizes a numeric answer string for comparison.
// Integers and decimals are both handled; leading and trailing zeros are
// dropped by the round-trip through ParseFloat.
func normalizeNumeric(answer string) (string, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}
