package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleEvaluation(sessionID, topic string, accuracy float64, at time.Time) EvaluationData {
	return EvaluationData{
		SessionID:      sessionID,
		Topic:          topic,
		Level:          "pro",
		Accuracy:       accuracy,
		Confidence:     70,
		Justification:  "Pro: solid accuracy with a weak hard band.",
		Recommendation: "Drill hard questions.",
		TotalQuestions: 10,
		TotalCorrect:   7,
		AvgTimeSecs:    9,
		CreatedAt:      at,
		Answers: []AnswerData{
			{QuestionID: "q1", Topic: topic, Difficulty: "easy", UserAnswer: "4", CorrectAnswer: "4", IsCorrect: true, TimeSpentMs: 4000},
			{QuestionID: "q2", Topic: topic, Difficulty: "hard", UserAnswer: "5", CorrectAnswer: "6", IsCorrect: false, TimeSpentMs: 12000},
		},
	}
}

func TestSaveEvaluation_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EvaluationRepo()
	ctx := context.Background()

	data := sampleEvaluation("sess-1", "Algebra", 70, time.Now())
	if err := repo.SaveEvaluation(ctx, data); err != nil {
		t.Fatalf("SaveEvaluation error = %v", err)
	}

	got, err := repo.RecentEvaluations(ctx, 10)
	if err != nil {
		t.Fatalf("RecentEvaluations error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("evaluations = %d, want 1", len(got))
	}
	if got[0].SessionID != "sess-1" || got[0].Level != "pro" || got[0].Accuracy != 70 {
		t.Errorf("round trip mismatch: %+v", got[0])
	}

	var answerCount int
	err = s.DB().QueryRow(`SELECT COUNT(*) FROM answers WHERE session_id = ?`, "sess-1").Scan(&answerCount)
	if err != nil {
		t.Fatalf("count answers: %v", err)
	}
	if answerCount != 2 {
		t.Errorf("answers = %d, want 2", answerCount)
	}
}

func TestSaveEvaluation_DuplicateSessionRejected(t *testing.T) {
	s := openTestStore(t)
	repo := s.EvaluationRepo()
	ctx := context.Background()

	data := sampleEvaluation("sess-1", "Algebra", 70, time.Now())
	if err := repo.SaveEvaluation(ctx, data); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.SaveEvaluation(ctx, data); err == nil {
		t.Error("expected error on duplicate session_id")
	}

	// Failed second save must not leave partial answer rows behind.
	var answerCount int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM answers`).Scan(&answerCount); err != nil {
		t.Fatalf("count answers: %v", err)
	}
	if answerCount != 2 {
		t.Errorf("answers = %d after rollback, want 2", answerCount)
	}
}

func TestTopicLevels_LatestPerTopic(t *testing.T) {
	s := openTestStore(t)
	repo := s.EvaluationRepo()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	older := sampleEvaluation("sess-1", "Algebra", 50, base)
	older.Level = "apprentice"
	newer := sampleEvaluation("sess-2", "Algebra", 85, base.Add(time.Hour))
	newer.Level = "grandmaster"
	other := sampleEvaluation("sess-3", "Fractions", 65, base)

	for _, d := range []EvaluationData{older, newer, other} {
		if err := repo.SaveEvaluation(ctx, d); err != nil {
			t.Fatalf("save %s: %v", d.SessionID, err)
		}
	}

	levels, err := repo.TopicLevels(ctx)
	if err != nil {
		t.Fatalf("TopicLevels error = %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("topics = %d, want 2", len(levels))
	}
	if levels[0].Topic != "Algebra" || levels[0].Level != "grandmaster" {
		t.Errorf("Algebra level = %+v, want latest (grandmaster)", levels[0])
	}
	if !levels[0].UpdatedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("Algebra UpdatedAt = %v, want %v", levels[0].UpdatedAt, base.Add(time.Hour))
	}
	if levels[1].Topic != "Fractions" || levels[1].Level != "pro" {
		t.Errorf("Fractions level = %+v", levels[1])
	}
}

func TestRecentEvaluations_OrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EvaluationRepo()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		d := sampleEvaluation(
			"sess-"+string(rune('a'+i)), "Geometry", 60, base.Add(time.Duration(i)*time.Minute))
		if err := repo.SaveEvaluation(ctx, d); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	got, err := repo.RecentEvaluations(ctx, 3)
	if err != nil {
		t.Fatalf("RecentEvaluations error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("evaluations = %d, want 3", len(got))
	}
	if got[0].SessionID != "sess-e" {
		t.Errorf("newest first = %s, want sess-e", got[0].SessionID)
	}
}
