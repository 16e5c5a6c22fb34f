package topics

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Bradley1112/nurture-sub001/internal/quizbank"
	"github.com/Bradley1112/nurture-sub001/internal/router"
	"github.com/Bradley1112/nurture-sub001/internal/screen"
	"github.com/Bradley1112/nurture-sub001/internal/screens/quiz"
	"github.com/Bradley1112/nurture-sub001/internal/store"
	"github.com/Bradley1112/nurture-sub001/internal/ui/components"
	"github.com/Bradley1112/nurture-sub001/internal/ui/layout"
	"github.com/Bradley1112/nurture-sub001/internal/ui/theme"
)

// TopicsScreen lets the learner pick a topic to be quizzed on.
type TopicsScreen struct {
	menu       components.Menu
	topicNames []string
	knownLevel map[string]string
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)

// New creates a new TopicsScreen from the question bank.
func New(bank *quizbank.Bank, repo store.EvaluationRepo) *TopicsScreen {
	topicNames := bank.Topics()

	// Annotate topics the learner has already been leveled on.
	knownLevel := make(map[string]string)
	if repo != nil {
		if tls, err := repo.TopicLevels(context.Background()); err == nil {
			for _, tl := range tls {
				knownLevel[tl.Topic] = tl.Level
			}
		}
	}

	items := make([]components.MenuItem, 0, len(topicNames)+1)
	for _, topic := range topicNames {
		topic := topic
		label := topic
		if lvl, ok := knownLevel[topic]; ok {
			label = fmt.Sprintf("%s  (%s)", topic, lvl)
		}
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: quiz.New(bank, repo, topic)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Back",
		Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		},
	})

	return &TopicsScreen{
		menu:       components.NewMenu(items),
		topicNames: topicNames,
		knownLevel: knownLevel,
	}
}

func (t *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (t *TopicsScreen) Title() string {
	return "Pick a Topic"
}

func (t *TopicsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	t.menu, cmd = t.menu.Update(msg)
	return t, cmd
}

func (t *TopicsScreen) View(width, height int) string {
	var sections []string

	heading := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Which topic should we look at?")
	sections = append(sections, heading)

	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d questions per quiz, balanced across difficulty", quizbank.DefaultQuizSize))
	sections = append(sections, sub)

	sections = append(sections, t.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
