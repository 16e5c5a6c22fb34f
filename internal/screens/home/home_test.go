package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Bradley1112/nurture-sub001/internal/quizbank"
	"github.com/Bradley1112/nurture-sub001/internal/router"
	"github.com/Bradley1112/nurture-sub001/internal/store"
)

// mockRepo implements store.EvaluationRepo for testing.
type mockRepo struct {
	levels []store.TopicLevel
}

func (m *mockRepo) SaveEvaluation(context.Context, store.EvaluationData) error { return nil }
func (m *mockRepo) TopicLevels(context.Context) ([]store.TopicLevel, error) {
	return m.levels, nil
}
func (m *mockRepo) RecentEvaluations(context.Context, int) ([]store.EvaluationData, error) {
	return nil, nil
}

func testBank(t *testing.T) *quizbank.Bank {
	t.Helper()
	bank, err := quizbank.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return bank
}

func TestHomeScreen_Title(t *testing.T) {
	h := New(testBank(t), &mockRepo{})
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want %q", h.Title(), "Home")
	}
}

func TestHomeScreen_View(t *testing.T) {
	h := New(testBank(t), &mockRepo{
		levels: []store.TopicLevel{{Topic: "Fractions", Level: "pro"}},
	})
	view := h.View(80, 24)
	if view == "" {
		t.Error("expected non-empty home view")
	}
}

func TestHomeScreen_SelectQuizPushesTopics(t *testing.T) {
	h := New(testBank(t), &mockRepo{})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from Enter on the first item")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestHomeScreen_SelectLevelsPushesLevels(t *testing.T) {
	h := New(testBank(t), &mockRepo{})

	h.Update(tea.KeyPressMsg{Code: 'j'})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from Enter on the second item")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestHomeScreen_KeyHints(t *testing.T) {
	h := New(testBank(t), &mockRepo{})
	if len(h.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
