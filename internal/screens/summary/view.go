package summary

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Bradley1112/nurture-sub001/internal/evaluation"
	"github.com/Bradley1112/nurture-sub001/internal/quizbank"
	"github.com/Bradley1112/nurture-sub001/internal/ui/components"
	"github.com/Bradley1112/nurture-sub001/internal/ui/theme"
)

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	res := s.result
	topic := ""
	if len(res.Topics) > 0 {
		topic = res.Topics[0]
	}

	center := func(line string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	// Level card.
	levelStyle := lipgloss.NewStyle().
		Foreground(levelColor(res.Level)).
		Bold(true)
	card := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(levelColor(res.Level)).
		Padding(0, 3).
		Align(lipgloss.Center)

	cardBody := levelStyle.Render(levelIcon(res.Level)+"  "+strings.ToUpper(res.Level.Title())) +
		"\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s · %d%% confidence", topic, res.Confidence))
	center(card.Render(cardBody))
	b.WriteString("\n")

	// Stats line.
	m := res.Metrics
	stats := fmt.Sprintf("Correct: %d/%d        Accuracy: %.1f%%        Avg time: %ds",
		m.TotalCorrect, m.TotalQuestions, m.Accuracy, m.AverageTimeSeconds)
	center(lipgloss.NewStyle().Foreground(theme.Text).Render(stats))
	b.WriteString("\n")

	// Per-band breakdown.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 48)))
	center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("By difficulty"))
	center(divider)
	b.WriteString("\n")

	barWidth := min(width-8, 44)
	for _, d := range quizbank.Difficulties() {
		bc := m.Breakdown[d]
		bar := components.ProgressBar{
			Label:   fmt.Sprintf("%-9s", d.Label()),
			Percent: bc.Ratio(),
			Width:   barWidth,
			Color:   bandColor(bc),
		}
		count := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf(" %d/%d", bc.Correct, bc.Total))
		center(bar.View() + count)
	}
	b.WriteString("\n")

	// Narrative.
	narrativeWidth := min(width-8, 64)
	center(lipgloss.NewStyle().Foreground(theme.Text).Width(narrativeWidth).
		Render(res.Justification))
	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Secondary).Italic(true).Width(narrativeWidth).
		Render(res.Recommendation))
	b.WriteString("\n")

	// Save status.
	center(s.renderSaveStatus())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *SummaryScreen) renderSaveStatus() string {
	switch {
	case s.repo == nil:
		return ""
	case s.saving:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("saving...")
	case s.saveErr != nil:
		return lipgloss.NewStyle().Foreground(theme.Error).
			Render("could not save result: " + s.saveErr.Error() + "  (press R to retry)")
	case s.saved:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("result saved")
	default:
		return ""
	}
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

func levelIcon(l evaluation.Level) string {
	switch l {
	case evaluation.Apprentice:
		return "🌿"
	case evaluation.Pro:
		return "🌳"
	case evaluation.Grandmaster:
		return "🏆"
	default:
		return "🌱"
	}
}

// bandColor renders untouched bands dim and attempted bands by how well
// they went.
func bandColor(bc evaluation.BandCount) color.Color {
	switch {
	case bc.Total == 0:
		return theme.Border
	case bc.Ratio() >= 0.5:
		return theme.Success
	default:
		return theme.Error
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
