package discussion

import (
	"time"

	tea "charm.land/bubbletea/v2"

	disc "github.com/Bradley1112/nurture-sub001/internal/discussion"
	"github.com/Bradley1112/nurture-sub001/internal/evaluation"
	"github.com/Bradley1112/nurture-sub001/internal/router"
	"github.com/Bradley1112/nurture-sub001/internal/screen"
	"github.com/Bradley1112/nurture-sub001/internal/screens/summary"
	"github.com/Bradley1112/nurture-sub001/internal/session"
	"github.com/Bradley1112/nurture-sub001/internal/store"
	"github.com/Bradley1112/nurture-sub001/internal/ui/layout"
)

// tickEventMsg carries a countdown update from the runner.
type tickEventMsg struct {
	remaining time.Duration
}

// turnEventMsg carries one emitted discussion turn.
type turnEventMsg struct {
	turn disc.Turn
}

// completeEventMsg carries the final transcript.
type completeEventMsg struct {
	turns []disc.Turn
}

// DiscussionScreen plays the timed evaluation discussion: three
// participants take turns over a one-minute countdown while the learner
// watches. When the discussion settles it hands the assembled result to
// the summary screen.
type DiscussionScreen struct {
	sess *session.QuizSession
	repo store.EvaluationRepo
	eval evaluation.Evaluation

	runner *disc.Runner
	events chan tea.Msg

	remaining time.Duration
	turns     []disc.Turn
	started   bool
}

var _ screen.Screen = (*DiscussionScreen)(nil)
var _ screen.KeyHintProvider = (*DiscussionScreen)(nil)

// New creates a DiscussionScreen for a finished session. The session is
// scored up front; the discussion itself is presentation.
func New(sess *session.QuizSession, repo store.EvaluationRepo) *DiscussionScreen {
	return newWithClock(sess, repo, disc.SystemClock)
}

// newWithClock lets tests drive the countdown with a virtual clock.
func newWithClock(sess *session.QuizSession, repo store.EvaluationRepo, clock disc.Clock) *DiscussionScreen {
	eval := evaluation.Evaluate(sess.Answers)

	// Callbacks run on the runner goroutine; the buffered channel decouples
	// them from bubbletea's update loop. Capacity covers a full session's
	// events (60 ticks, 9 turns, 1 completion) with room to spare.
	events := make(chan tea.Msg, 128)

	s := &DiscussionScreen{
		sess:      sess,
		repo:      repo,
		eval:      eval,
		events:    events,
		remaining: disc.TotalDuration,
	}

	s.runner = disc.NewRunner(disc.RunnerConfig{
		Roster:   disc.DefaultRoster(),
		Clock:    clock,
		Accuracy: func() float64 { return eval.Metrics.Accuracy },
		OnTick: func(remaining time.Duration) {
			events <- tickEventMsg{remaining: remaining}
		},
		OnTurn: func(turn disc.Turn) {
			events <- turnEventMsg{turn: turn}
		},
		OnComplete: func(turns []disc.Turn) {
			events <- completeEventMsg{turns: turns}
		},
	})

	return s
}

func (s *DiscussionScreen) Init() tea.Cmd {
	if !s.started {
		s.started = true
		s.runner.Start()
	}
	return s.waitForEvent()
}

// waitForEvent blocks on the runner's event channel and surfaces the next
// event as a bubbletea message.
func (s *DiscussionScreen) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-s.events
	}
}

func (s *DiscussionScreen) Title() string {
	return "Evaluation in Progress"
}

func (s *DiscussionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Skip evaluation"},
	}
}

func (s *DiscussionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickEventMsg:
		s.remaining = msg.remaining
		return s, s.waitForEvent()

	case turnEventMsg:
		s.turns = append(s.turns, msg.turn)
		return s, s.waitForEvent()

	case completeEventMsg:
		s.turns = msg.turns
		result := evaluation.BuildResult(s.sess, s.eval, msg.turns)
		next := summary.New(result, s.sess.Answers, s.repo)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		if msg.String() == "esc" {
			// Abandoning the discussion abandons the evaluation: nothing
			// is persisted and no further events are delivered.
			s.runner.Cancel()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}
