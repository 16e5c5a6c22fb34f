package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/Bradley1112/nurture-sub001/internal/quizbank"
)

// AnswerRecord captures one answered quiz question. Records are immutable
// once appended: IsCorrect is fixed at creation time and downstream
// consumers trust it rather than re-checking the answer text.
type AnswerRecord struct {
	QuestionID    string
	Topic         string
	Difficulty    quizbank.Difficulty
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	TimeSpentMs   int
}

// QuizSession aggregates one diagnostic run: the topics under test and the
// ordered answers given. The owning flow hands it to the scorer by value
// after Finish.
type QuizSession struct {
	SessionID string
	StartTime time.Time
	EndTime   time.Time
	Topics    []string
	Answers   []AnswerRecord
}

// New creates a QuizSession for the given topics, started at start.
func New(topics []string, start time.Time) *QuizSession {
	return &QuizSession{
		SessionID: uuid.New().String(),
		StartTime: start,
		Topics:    topics,
	}
}

// RecordAnswer appends an AnswerRecord for question answered with userAnswer
// after spending elapsed on it. Correctness is decided here, once.
func (s *QuizSession) RecordAnswer(q quizbank.Question, userAnswer string, elapsed time.Duration) AnswerRecord {
	if elapsed < 0 {
		elapsed = 0
	}
	rec := AnswerRecord{
		QuestionID:    q.ID,
		Topic:         q.Topic,
		Difficulty:    q.Difficulty,
		UserAnswer:    userAnswer,
		CorrectAnswer: q.Answer,
		IsCorrect:     quizbank.CheckAnswer(userAnswer, q),
		TimeSpentMs:   int(elapsed.Milliseconds()),
	}
	s.Answers = append(s.Answers, rec)
	return rec
}

// Finish stamps the session end time. EndTime never precedes StartTime.
func (s *QuizSession) Finish(end time.Time) {
	if end.Before(s.StartTime) {
		end = s.StartTime
	}
	s.EndTime = end
}

// Validate checks that the session is fit for evaluation. It is called
// before the discussion sequencer starts so a broken session falls back to
// a safe screen instead of animating over undefined metrics.
func (s *QuizSession) Validate() error {
	if len(s.Topics) == 0 {
		return ErrNoTopics
	}
	if len(s.Answers) == 0 {
		return ErrNoAnswers
	}
	return nil
}

// CorrectCount returns how many recorded answers were correct.
func (s *QuizSession) CorrectCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}

// LiveAccuracy returns the running accuracy percentage over the answers
// recorded so far, or 0 before any answer. The discussion sequencer reads
// this while narrating.
func (s *QuizSession) LiveAccuracy() float64 {
	if len(s.Answers) == 0 {
		return 0
	}
	return float64(s.CorrectCount()) / float64(len(s.Answers)) * 100
}
