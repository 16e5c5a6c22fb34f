package discussion

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	disc "github.com/Bradley1112/nurture-sub001/internal/discussion"
	"github.com/Bradley1112/nurture-sub001/internal/ui/components"
	"github.com/Bradley1112/nurture-sub001/internal/ui/theme"
)

func (s *DiscussionScreen) View(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("The panel is reviewing your answers...")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Countdown.
	elapsed := disc.TotalDuration - s.remaining
	bar := components.ProgressBar{
		Percent: float64(elapsed) / float64(disc.TotalDuration),
		Width:   min(width-8, 60),
		Color:   theme.Secondary,
	}
	secs := int(s.remaining.Seconds())
	countdown := fmt.Sprintf("%s  %d:%02d", bar.View(), secs/60, secs%60)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, countdown))
	b.WriteString("\n\n")

	// Transcript, most recent turns at the bottom.
	transcriptWidth := min(width-8, 72)
	for _, turn := range s.turns {
		name := lipgloss.NewStyle().
			Foreground(participantColor(turn.ParticipantID)).
			Bold(true).
			Render(participantName(turn.ParticipantID))
		line := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(transcriptWidth).
			Render(name + ": " + turn.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n\n")
	}

	if len(s.turns) == 0 {
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("the panel is gathering its thoughts...")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func participantName(id string) string {
	switch id {
	case disc.ParticipantAnalyst:
		return "Analyst"
	case disc.ParticipantExaminer:
		return "Examiner"
	case disc.ParticipantMentor:
		return "Mentor"
	default:
		return id
	}
}

func participantColor(id string) color.Color {
	switch id {
	case disc.ParticipantAnalyst:
		return theme.Secondary
	case disc.ParticipantExaminer:
		return theme.Accent
	case disc.ParticipantMentor:
		return theme.Primary
	default:
		return theme.Text
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
