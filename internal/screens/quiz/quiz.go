package quiz

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Bradley1112/nurture-sub001/internal/quizbank"
	"github.com/Bradley1112/nurture-sub001/internal/router"
	"github.com/Bradley1112/nurture-sub001/internal/screen"
	discscreen "github.com/Bradley1112/nurture-sub001/internal/screens/discussion"
	"github.com/Bradley1112/nurture-sub001/internal/session"
	"github.com/Bradley1112/nurture-sub001/internal/store"
	"github.com/Bradley1112/nurture-sub001/internal/ui/components"
	"github.com/Bradley1112/nurture-sub001/internal/ui/layout"
)

// QuizScreen runs one diagnostic quiz: a fixed set of questions for a
// single topic, answered in order, with per-question feedback.
type QuizScreen struct {
	repo  store.EvaluationRepo
	topic string

	questions []quizbank.Question
	idx       int
	sess      *session.QuizSession

	questionStart time.Time
	mc            components.MultiChoice
	input         components.TextInput

	showingFeedback    bool
	showingQuitConfirm bool
	lastRecord         session.AnswerRecord
	errMsg             string

	// now is stubbed in tests for deterministic timing.
	now func() time.Time
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the given topic.
func New(bank *quizbank.Bank, repo store.EvaluationRepo, topic string) *QuizScreen {
	return newWithSeed(bank, repo, topic, time.Now().UnixNano())
}

// newWithSeed lets tests pin question selection.
func newWithSeed(bank *quizbank.Bank, repo store.EvaluationRepo, topic string, seed int64) *QuizScreen {
	s := &QuizScreen{
		repo:  repo,
		topic: topic,
		now:   time.Now,
	}

	picker := quizbank.NewPicker(bank, seed)
	questions, err := picker.BuildQuiz(topic, quizbank.DefaultQuizSize)
	if err != nil {
		s.errMsg = "Could not build a quiz for " + topic + ": " + err.Error()
		return s
	}

	s.questions = questions
	s.sess = session.New([]string{topic}, s.now())
	s.prepareQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.errMsg == "" && s.current().Format == quizbank.FormatNumeric {
		return s.input.Init()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	return s.topic + " Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
	if s.current().Format == quizbank.FormatMultipleChoice {
		hints = append([]layout.KeyHint{{Key: "1-4", Description: "Choose"}}, hints...)
	}
	return hints
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if s.errMsg != "" {
		if isKey && (kmsg.String() == "esc" || kmsg.String() == "enter") {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.showingQuitConfirm {
		if !isKey {
			return s, nil
		}
		switch kmsg.String() {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		if isKey {
			return s.advance()
		}
		return s, nil
	}

	if isKey && kmsg.String() == "esc" {
		s.showingQuitConfirm = true
		return s, nil
	}

	if s.current().Format == quizbank.FormatMultipleChoice {
		return s.updateMultipleChoice(msg)
	}
	return s.updateNumeric(msg)
}

func (s *QuizScreen) updateMultipleChoice(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch key := kmsg.String(); key {
		case "1", "2", "3", "4":
			s.mc.Submit(int(key[0] - '1'))
			if s.mc.Submitted {
				s.record(s.mc.Chosen())
			}
			return s, nil
		case "enter":
			s.mc.Submit(s.mc.Selected)
			if s.mc.Submitted {
				s.record(s.mc.Chosen())
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	return s, cmd
}

func (s *QuizScreen) updateNumeric(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		answer := strings.TrimSpace(s.input.Value())
		if answer == "" {
			return s, nil
		}
		s.record(answer)
		s.input.Submit(s.lastRecord.IsCorrect)
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// record scores the current answer and switches to the feedback view.
func (s *QuizScreen) record(answer string) {
	q := s.current()
	s.lastRecord = s.sess.RecordAnswer(q, answer, s.now().Sub(s.questionStart))
	s.showingFeedback = true
}

// advance moves to the next question, or hands the finished session to the
// discussion screen after the last one.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.idx++

	if s.idx >= len(s.questions) {
		s.sess.Finish(s.now())
		if err := s.sess.Validate(); err != nil {
			s.errMsg = "Quiz ended in an invalid state: " + err.Error()
			return s, nil
		}
		next := discscreen.New(s.sess, s.repo)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	s.prepareQuestion()
	if s.current().Format == quizbank.FormatNumeric {
		return s, s.input.Init()
	}
	return s, nil
}

func (s *QuizScreen) current() quizbank.Question {
	return s.questions[s.idx]
}

func (s *QuizScreen) prepareQuestion() {
	q := s.current()
	if q.Format == quizbank.FormatMultipleChoice {
		s.mc = components.NewMultiChoice(q.Text, q.Choices, correctChoiceIndex(q))
	} else {
		s.input = components.NewTextInput("Type your answer...", true, 20)
	}
	s.questionStart = s.now()
}

// correctChoiceIndex locates the correct option within a multiple-choice
// question's choices.
func correctChoiceIndex(q quizbank.Question) int {
	want := strings.ToLower(strings.TrimSpace(q.Answer))
	for i, c := range q.Choices {
		if strings.ToLower(strings.TrimSpace(c)) == want {
			return i
		}
	}
	return -1
}
