package discussion

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	disc "github.com/Bradley1112/nurture-sub001/internal/discussion"
	"github.com/Bradley1112/nurture-sub001/internal/quizbank"
	"github.com/Bradley1112/nurture-sub001/internal/router"
	"github.com/Bradley1112/nurture-sub001/internal/screens/summary"
	"github.com/Bradley1112/nurture-sub001/internal/session"
	"github.com/Bradley1112/nurture-sub001/internal/store"
)

// mockRepo implements store.EvaluationRepo for testing.
type mockRepo struct{}

func (m *mockRepo) SaveEvaluation(context.Context, store.EvaluationData) error { return nil }
func (m *mockRepo) TopicLevels(context.Context) ([]store.TopicLevel, error)    { return nil, nil }
func (m *mockRepo) RecentEvaluations(context.Context, int) ([]store.EvaluationData, error) {
	return nil, nil
}

// idleClock hands out tickers and timers that never fire, so screen tests
// can drive the update loop with hand-built messages.
type idleClock struct{}

type idleTicker struct{ ch chan time.Time }

func (t idleTicker) C() <-chan time.Time { return t.ch }
func (t idleTicker) Stop()               {}

type idleTimer struct{ ch chan time.Time }

func (t idleTimer) C() <-chan time.Time { return t.ch }
func (t idleTimer) Stop() bool          { return true }

func (idleClock) NewTicker(time.Duration) disc.Ticker {
	return idleTicker{ch: make(chan time.Time)}
}
func (idleClock) NewTimer(time.Duration) disc.Timer {
	return idleTimer{ch: make(chan time.Time)}
}

func testSession() *session.QuizSession {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	sess := session.New([]string{"Fractions"}, start)
	sess.RecordAnswer(quizbank.Question{
		ID:         "frac-001",
		Topic:      "Fractions",
		Format:     quizbank.FormatNumeric,
		Answer:     "3",
		Difficulty: quizbank.Easy,
	}, "3", 5*time.Second)
	sess.Finish(start.Add(time.Minute))
	return sess
}

func newTestScreen() *DiscussionScreen {
	return newWithClock(testSession(), &mockRepo{}, idleClock{})
}

func TestDiscussionScreen_Title(t *testing.T) {
	s := newTestScreen()
	if s.Title() != "Evaluation in Progress" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestDiscussionScreen_StartsAtFullCountdown(t *testing.T) {
	s := newTestScreen()
	if s.remaining != disc.TotalDuration {
		t.Errorf("remaining = %v, want %v", s.remaining, disc.TotalDuration)
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view before any turns")
	}
}

func TestDiscussionScreen_TickUpdatesCountdown(t *testing.T) {
	s := newTestScreen()

	_, cmd := s.Update(tickEventMsg{remaining: 42 * time.Second})
	if s.remaining != 42*time.Second {
		t.Errorf("remaining = %v, want 42s", s.remaining)
	}
	if cmd == nil {
		t.Error("expected the screen to keep waiting for events")
	}
}

func TestDiscussionScreen_TurnsAccumulate(t *testing.T) {
	s := newTestScreen()

	s.Update(turnEventMsg{turn: disc.Turn{
		ParticipantID: disc.ParticipantAnalyst,
		Round:         1,
		Text:          "Looking at the numbers now.",
	}})
	s.Update(turnEventMsg{turn: disc.Turn{
		ParticipantID: disc.ParticipantExaminer,
		Round:         1,
		Text:          "The middle difficulties held up.",
		SequenceIndex: 1,
	}})

	if len(s.turns) != 2 {
		t.Fatalf("turns = %d, want 2", len(s.turns))
	}
	if s.View(100, 40) == "" {
		t.Error("expected transcript view to render")
	}
}

func TestDiscussionScreen_CompleteReplacesWithSummary(t *testing.T) {
	s := newTestScreen()

	turns := []disc.Turn{
		{ParticipantID: disc.ParticipantAnalyst, Round: 1, Text: "done"},
	}
	_, cmd := s.Update(completeEventMsg{turns: turns})
	if cmd == nil {
		t.Fatal("expected a command on completion")
	}

	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replaceMsg.Screen.(*summary.SummaryScreen); !ok {
		t.Fatalf("expected a summary screen, got %T", replaceMsg.Screen)
	}
}

func TestDiscussionScreen_EscCancelsAndPops(t *testing.T) {
	s := newTestScreen()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command from Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}
