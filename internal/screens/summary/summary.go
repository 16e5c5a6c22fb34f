package summary

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Bradley1112/nurture-sub001/internal/evaluation"
	"github.com/Bradley1112/nurture-sub001/internal/router"
	"github.com/Bradley1112/nurture-sub001/internal/screen"
	"github.com/Bradley1112/nurture-sub001/internal/session"
	"github.com/Bradley1112/nurture-sub001/internal/store"
	"github.com/Bradley1112/nurture-sub001/internal/ui/layout"
)

const persistTimeout = 5 * time.Second

// persistDoneMsg reports the outcome of saving the evaluation.
type persistDoneMsg struct {
	err error
}

// SummaryScreen displays the final evaluation and persists it.
type SummaryScreen struct {
	result  evaluation.Result
	answers []session.AnswerRecord
	repo    store.EvaluationRepo

	saving  bool
	saved   bool
	saveErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a completed evaluation.
func New(result evaluation.Result, answers []session.AnswerRecord, repo store.EvaluationRepo) *SummaryScreen {
	return &SummaryScreen{
		result:  result,
		answers: answers,
		repo:    repo,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.repo == nil {
		return nil
	}
	s.saving = true
	return s.persist()
}

// persist writes the evaluation off the update loop. Display is never
// blocked on storage: the result on screen is final whether or not the
// save succeeds.
func (s *SummaryScreen) persist() tea.Cmd {
	repo := s.repo
	data := s.evaluationData()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		return persistDoneMsg{err: repo.SaveEvaluation(ctx, data)}
	}
}

// evaluationData flattens the result for storage. Quiz sessions cover a
// single topic, so one row is written.
func (s *SummaryScreen) evaluationData() store.EvaluationData {
	topic := ""
	if len(s.result.Topics) > 0 {
		topic = s.result.Topics[0]
	}

	answers := make([]store.AnswerData, 0, len(s.answers))
	for _, a := range s.answers {
		answers = append(answers, store.AnswerData{
			QuestionID:    a.QuestionID,
			Topic:         a.Topic,
			Difficulty:    string(a.Difficulty),
			UserAnswer:    a.UserAnswer,
			CorrectAnswer: a.CorrectAnswer,
			IsCorrect:     a.IsCorrect,
			TimeSpentMs:   a.TimeSpentMs,
		})
	}

	return store.EvaluationData{
		SessionID:      s.result.SessionID,
		Topic:          topic,
		Level:          s.result.Level.String(),
		Accuracy:       s.result.Metrics.Accuracy,
		Confidence:     s.result.Confidence,
		Justification:  s.result.Justification,
		Recommendation: s.result.Recommendation,
		TotalQuestions: s.result.Metrics.TotalQuestions,
		TotalCorrect:   s.result.Metrics.TotalCorrect,
		AvgTimeSecs:    s.result.Metrics.AverageTimeSeconds,
		CreatedAt:      time.Now().UTC(),
		Answers:        answers,
	}
}

func (s *SummaryScreen) Title() string {
	return "Your Level"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if s.saveErr != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry save"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case persistDoneMsg:
		s.saving = false
		s.saveErr = msg.err
		s.saved = msg.err == nil
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			if s.saveErr != nil && !s.saving {
				s.saving = true
				s.saveErr = nil
				return s, s.persist()
			}
		}
	}
	return s, nil
}
