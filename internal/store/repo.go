package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EvaluationData is one persisted evaluation row plus its answer rows.
// The store speaks plain data: domain types are flattened at the boundary
// so the schema carries no dependency on scoring internals.
type EvaluationData struct {
	SessionID      string
	Topic          string
	Level          string
	Accuracy       float64
	Confidence     int
	Justification  string
	Recommendation string
	TotalQuestions int
	TotalCorrect   int
	AvgTimeSecs    int
	CreatedAt      time.Time
	Answers        []AnswerData
}

// AnswerData is one persisted answer row.
type AnswerData struct {
	QuestionID    string
	Topic         string
	Difficulty    string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	TimeSpentMs   int
}

// TopicLevel is the latest stored expertise level for one topic.
type TopicLevel struct {
	Topic     string
	Level     string
	Accuracy  float64
	UpdatedAt time.Time
}

// EvaluationRepo persists completed evaluations and serves level lookups.
type EvaluationRepo interface {
	// SaveEvaluation stores an evaluation and its answers in one
	// transaction. Called at most once per session after the discussion
	// completes; a second save for the same session fails on the unique
	// session_id constraint rather than silently duplicating.
	SaveEvaluation(ctx context.Context, data EvaluationData) error

	// TopicLevels returns the most recent evaluation per topic, sorted by
	// topic name.
	TopicLevels(ctx context.Context) ([]TopicLevel, error)

	// RecentEvaluations returns up to limit evaluations, newest first.
	RecentEvaluations(ctx context.Context, limit int) ([]EvaluationData, error)
}

type evaluationRepo struct {
	db *sql.DB
}

var _ EvaluationRepo = (*evaluationRepo)(nil)

func (r *evaluationRepo) SaveEvaluation(ctx context.Context, data EvaluationData) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createdAt := data.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO evaluations
			(session_id, topic, level, accuracy, confidence, justification,
			 recommendation, total_questions, total_correct, avg_time_secs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Topic, data.Level, data.Accuracy, data.Confidence,
		data.Justification, data.Recommendation, data.TotalQuestions,
		data.TotalCorrect, data.AvgTimeSecs, createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}

	for _, a := range data.Answers {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO answers
				(session_id, question_id, topic, difficulty, user_answer,
				 correct_answer, is_correct, time_spent_ms, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			data.SessionID, a.QuestionID, a.Topic, a.Difficulty,
			a.UserAnswer, a.CorrectAnswer, a.IsCorrect, a.TimeSpentMs, createdAt,
		)
		if err != nil {
			return fmt.Errorf("insert answer %s: %w", a.QuestionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *evaluationRepo) TopicLevels(ctx context.Context) ([]TopicLevel, error) {
	// SQLite resolves bare columns in a MAX() group to the row holding the
	// max, so the inner query yields the id of the latest evaluation per
	// topic. The outer query reads plain columns only: selecting
	// MAX(created_at) directly would strip the TIMESTAMP decltype and the
	// driver would hand back a string instead of a time.Time.
	rows, err := r.db.QueryContext(ctx,
		`SELECT topic, level, accuracy, created_at
		 FROM evaluations
		 WHERE id IN (
			SELECT id FROM evaluations
			GROUP BY topic
			HAVING created_at = MAX(created_at)
		 )
		 ORDER BY topic`,
	)
	if err != nil {
		return nil, fmt.Errorf("query topic levels: %w", err)
	}
	defer rows.Close()

	var out []TopicLevel
	for rows.Next() {
		var tl TopicLevel
		if err := rows.Scan(&tl.Topic, &tl.Level, &tl.Accuracy, &tl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan topic level: %w", err)
		}
		out = append(out, tl)
	}
	return out, rows.Err()
}

func (r *evaluationRepo) RecentEvaluations(ctx context.Context, limit int) ([]EvaluationData, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, topic, level, accuracy, confidence, justification,
			recommendation, total_questions, total_correct, avg_time_secs, created_at
		 FROM evaluations
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	var out []EvaluationData
	for rows.Next() {
		var e EvaluationData
		err := rows.Scan(&e.SessionID, &e.Topic, &e.Level, &e.Accuracy,
			&e.Confidence, &e.Justification, &e.Recommendation,
			&e.TotalQuestions, &e.TotalCorrect, &e.AvgTimeSecs, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
