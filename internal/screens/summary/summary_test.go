package summary

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Bradley1112/nurture-sub001/internal/evaluation"
	"github.com/Bradley1112/nurture-sub001/internal/quizbank"
	"github.com/Bradley1112/nurture-sub001/internal/router"
	"github.com/Bradley1112/nurture-sub001/internal/session"
	"github.com/Bradley1112/nurture-sub001/internal/store"
)

// mockRepo implements store.EvaluationRepo for testing.
type mockRepo struct {
	saved   []store.EvaluationData
	saveErr error
}

func (m *mockRepo) SaveEvaluation(_ context.Context, data store.EvaluationData) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, data)
	return nil
}
func (m *mockRepo) TopicLevels(context.Context) ([]store.TopicLevel, error) { return nil, nil }
func (m *mockRepo) RecentEvaluations(context.Context, int) ([]store.EvaluationData, error) {
	return nil, nil
}

func testAnswers() []session.AnswerRecord {
	return []session.AnswerRecord{
		{QuestionID: "q1", Topic: "Geometry", Difficulty: quizbank.Easy, UserAnswer: "4", CorrectAnswer: "4", IsCorrect: true, TimeSpentMs: 8000},
		{QuestionID: "q2", Topic: "Geometry", Difficulty: quizbank.Medium, UserAnswer: "9", CorrectAnswer: "12", IsCorrect: false, TimeSpentMs: 15000},
		{QuestionID: "q3", Topic: "Geometry", Difficulty: quizbank.Hard, UserAnswer: "30", CorrectAnswer: "30", IsCorrect: true, TimeSpentMs: 21000},
	}
}

func testResult() evaluation.Result {
	answers := testAnswers()
	eval := evaluation.Evaluate(answers)
	return evaluation.Result{
		SessionID:  "sess-123",
		Topics:     []string{"Geometry"},
		Evaluation: eval,
	}
}

func newTestSummary(repo store.EvaluationRepo) *SummaryScreen {
	return New(testResult(), testAnswers(), repo)
}

func TestSummaryScreen_Title(t *testing.T) {
	s := newTestSummary(&mockRepo{})
	if s.Title() != "Your Level" {
		t.Errorf("Title = %q, want %q", s.Title(), "Your Level")
	}
}

func TestSummaryScreen_View(t *testing.T) {
	s := newTestSummary(&mockRepo{})
	view := s.View(90, 40)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Geometry") {
		t.Error("view should name the topic")
	}
}

func TestSummaryScreen_PersistsOnInit(t *testing.T) {
	repo := &mockRepo{}
	s := newTestSummary(repo)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a persistence command from Init")
	}
	msg := cmd()
	done, ok := msg.(persistDoneMsg)
	if !ok {
		t.Fatalf("expected persistDoneMsg, got %T", msg)
	}
	if done.err != nil {
		t.Fatalf("save failed: %v", done.err)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("saved %d evaluations, want 1", len(repo.saved))
	}
	data := repo.saved[0]
	if data.SessionID != "sess-123" {
		t.Errorf("SessionID = %q", data.SessionID)
	}
	if data.Topic != "Geometry" {
		t.Errorf("Topic = %q", data.Topic)
	}
	if len(data.Answers) != 3 {
		t.Errorf("answer rows = %d, want 3", len(data.Answers))
	}
	if data.TotalCorrect != 2 || data.TotalQuestions != 3 {
		t.Errorf("totals = %d/%d, want 2/3", data.TotalCorrect, data.TotalQuestions)
	}

	s.Update(msg)
	if !s.saved || s.saveErr != nil {
		t.Error("screen should report a successful save")
	}
}

func TestSummaryScreen_SaveErrorAndRetry(t *testing.T) {
	repo := &mockRepo{saveErr: errors.New("disk full")}
	s := newTestSummary(repo)

	cmd := s.Init()
	s.Update(cmd())
	if s.saveErr == nil {
		t.Fatal("expected a save error")
	}
	if !strings.Contains(s.View(90, 40), "retry") {
		t.Error("view should offer a retry")
	}

	// Retry after the underlying failure clears.
	repo.saveErr = nil
	_, retry := s.Update(tea.KeyPressMsg{Code: 'r'})
	if retry == nil {
		t.Fatal("expected a retry command from R")
	}
	s.Update(retry())
	if s.saveErr != nil || !s.saved {
		t.Errorf("retry should have saved, err=%v", s.saveErr)
	}
	if len(repo.saved) != 1 {
		t.Errorf("saved %d evaluations, want 1", len(repo.saved))
	}
}

func TestSummaryScreen_NilRepoSkipsPersistence(t *testing.T) {
	s := newTestSummary(nil)
	if s.Init() != nil {
		t.Error("expected no persistence command without a repo")
	}
	if s.View(90, 40) == "" {
		t.Error("expected the result to render regardless")
	}
}

func TestSummaryScreen_EnterPops(t *testing.T) {
	s := newTestSummary(&mockRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := newTestSummary(&mockRepo{})
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}

	s.saveErr = errors.New("nope")
	hints := s.KeyHints()
	found := false
	for _, h := range hints {
		if h.Key == "R" {
			found = true
		}
	}
	if !found {
		t.Error("expected a retry hint when the save failed")
	}
}
