package session

import "errors"

var (
	// ErrNoTopics marks a session created without any topic.
	ErrNoTopics = errors.New("quiz session has no topics")

	// ErrNoAnswers marks a finished session with no answered questions.
	// Evaluating such a session would produce meaningless metrics.
	ErrNoAnswers = errors.New("quiz session has no answers")
)
