package levels

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Bradley1112/nurture-sub001/internal/evaluation"
	"github.com/Bradley1112/nurture-sub001/internal/router"
	"github.com/Bradley1112/nurture-sub001/internal/screen"
	"github.com/Bradley1112/nurture-sub001/internal/store"
	"github.com/Bradley1112/nurture-sub001/internal/ui/layout"
	"github.com/Bradley1112/nurture-sub001/internal/ui/theme"
)

const loadTimeout = 5 * time.Second

// levelsLoadedMsg carries the loaded topic levels or a load error.
type levelsLoadedMsg struct {
	levels []store.TopicLevel
	err    error
}

// LevelsScreen lists the learner's latest expertise level per topic.
type LevelsScreen struct {
	repo    store.EvaluationRepo
	levels  []store.TopicLevel
	loaded  bool
	loadErr error
}

var _ screen.Screen = (*LevelsScreen)(nil)
var _ screen.KeyHintProvider = (*LevelsScreen)(nil)

// New creates a new LevelsScreen.
func New(repo store.EvaluationRepo) *LevelsScreen {
	return &LevelsScreen{repo: repo}
}

func (l *LevelsScreen) Init() tea.Cmd {
	if l.repo == nil {
		l.loaded = true
		return nil
	}
	repo := l.repo
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		levels, err := repo.TopicLevels(ctx)
		return levelsLoadedMsg{levels: levels, err: err}
	}
}

func (l *LevelsScreen) Title() string {
	return "My Levels"
}

func (l *LevelsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LevelsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case levelsLoadedMsg:
		l.loaded = true
		l.levels = msg.levels
		l.loadErr = msg.err
		return l, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return l, nil
}

func (l *LevelsScreen) View(width, height int) string {
	var b strings.Builder

	center := func(line string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	center(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Your levels so far"))
	b.WriteString("\n")

	switch {
	case !l.loaded:
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("loading..."))

	case l.loadErr != nil:
		center(lipgloss.NewStyle().Foreground(theme.Error).
			Render("could not load levels: " + l.loadErr.Error()))

	case len(l.levels) == 0:
		center(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("No evaluations yet. Take a quiz to earn your first level!"))

	default:
		for _, tl := range l.levels {
			lvl := evaluation.ParseLevel(tl.Level)
			levelStr := lipgloss.NewStyle().
				Foreground(levelColor(lvl)).
				Bold(true).
				Render(fmt.Sprintf("%-12s", lvl.Title()))
			line := fmt.Sprintf("%-12s  %s  %5.1f%%   %s",
				tl.Topic, levelStr, tl.Accuracy,
				tl.UpdatedAt.Local().Format("Jan 2, 2006"))
			center(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("press Esc to go back"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// levelColor maps an expertise level to its theme color.
func levelColor(l evaluation.Level) color.Color {
	switch l {
	case evaluation.Apprentice:
		return theme.LevelApprentice
	case evaluation.Pro:
		return theme.LevelPro
	case evaluation.Grandmaster:
		return theme.LevelGrandmaster
	default:
		return theme.LevelBeginner
	}
}
