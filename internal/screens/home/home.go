package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Bradley1112/nurture-sub001/internal/quizbank"
	"github.com/Bradley1112/nurture-sub001/internal/router"
	"github.com/Bradley1112/nurture-sub001/internal/screen"
	"github.com/Bradley1112/nurture-sub001/internal/screens/levels"
	"github.com/Bradley1112/nurture-sub001/internal/screens/topics"
	"github.com/Bradley1112/nurture-sub001/internal/store"
	"github.com/Bradley1112/nurture-sub001/internal/ui/components"
	"github.com/Bradley1112/nurture-sub001/internal/ui/layout"
	"github.com/Bradley1112/nurture-sub001/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu         components.Menu
	topicCount   int
	leveledCount int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(bank *quizbank.Bank, repo store.EvaluationRepo) *HomeScreen {
	var leveledCount int
	if repo != nil {
		if tls, err := repo.TopicLevels(context.Background()); err == nil {
			leveledCount = len(tls)
		}
	}

	items := []components.MenuItem{
		{Label: "TAKE A QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: topics.New(bank, repo)}
			}
		}},
		{Label: "MY LEVELS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: levels.New(repo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	var topicCount int
	if bank != nil {
		topicCount = len(bank.Topics())
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		topicCount:   topicCount,
		leveledCount: leveledCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("What would you like to do?")
	sections = append(sections, title)

	stats := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(statsLine(h.topicCount, h.leveledCount))
	sections = append(sections, stats)

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func statsLine(topicCount, leveledCount int) string {
	var b strings.Builder
	b.WriteString(plural(topicCount, "topic"))
	b.WriteString(" available")
	if leveledCount > 0 {
		b.WriteString("  ·  ")
		b.WriteString(plural(leveledCount, "level"))
		b.WriteString(" earned")
	}
	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
