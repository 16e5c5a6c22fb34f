package evaluation

import (
	"github.com/Bradley1112/nurture-sub001/internal/discussion"
	"github.com/Bradley1112/nurture-sub001/internal/session"
)

// Evaluation is the scorer's verdict on a session, before the discussion
// transcript is attached.
type Evaluation struct {
	Metrics        Metrics
	Level          Level
	Confidence     int
	Justification  string
	Recommendation string
}

// Evaluate scores a session's answers. Pure and total: it never fails,
// including for the zero-answer case.
func Evaluate(answers []session.AnswerRecord) Evaluation {
	m := ComputeMetrics(answers)
	level := AssignLevel(m)
	return Evaluation{
		Metrics:        m,
		Level:          level,
		Confidence:     Confidence(m),
		Justification:  Justify(m, level),
		Recommendation: Recommend(m),
	}
}

// Result is the final evaluation output handed to persistence and display.
// Assembled once, after the discussion sequencer completes; never mutated
// afterward.
type Result struct {
	SessionID string
	Topics    []string
	Evaluation
	Turns []discussion.Turn
}

// BuildResult assembles the terminal Result from a finished session, its
// evaluation, and the discussion transcript (9 turns on normal completion,
// fewer if the discussion was interrupted).
func BuildResult(sess *session.QuizSession, eval Evaluation, turns []discussion.Turn) Result {
	return Result{
		SessionID:  sess.SessionID,
		Topics:     sess.Topics,
		Evaluation: eval,
		Turns:      turns,
	}
}
