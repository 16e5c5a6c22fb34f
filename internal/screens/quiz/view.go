package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Bradley1112/nurture-sub001/internal/quizbank"
	"github.com/Bradley1112/nurture-sub001/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.showingFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	var sections []string

	q := s.current()

	counter := fmt.Sprintf("Question %d of %d", s.idx+1, len(s.questions))
	difficulty := q.Difficulty.Label()
	header := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		counter + "   ·   " + difficulty)
	sections = append(sections, header)
	sections = append(sections, "")

	if q.Format == quizbank.FormatMultipleChoice {
		sections = append(sections, s.mc.View())
	} else {
		question := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Text)
		sections = append(sections, question)
		sections = append(sections, "")
		sections = append(sections, s.input.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderFeedback(width, height int) string {
	var sections []string

	rec := s.lastRecord
	if rec.IsCorrect {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("✓ Correct!"))
	} else {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("✗ Not quite."))
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("The answer was: "+rec.CorrectAnswer))
	}

	if expl := s.current().Explanation; expl != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-8, 64)).
			Render(expl))
	}

	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("press any key to continue"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderQuitConfirm(width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3)

	title := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("Abandon this quiz?")
	body := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Your answers so far will be discarded.\n\n[Y] yes   [N] keep going")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		box.Render(title+"\n\n"+body))
}

func renderError(width, height int, msg string) string {
	content := lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(min(width-8, 64)).
		Render(msg) + "\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press Esc to go back")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
