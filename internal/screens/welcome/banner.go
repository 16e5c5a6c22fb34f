package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/Bradley1112/nurture-sub001/internal/ui/theme"
)

const bannerArt = `
 ███╗   ██╗██╗   ██╗██████╗ ████████╗██╗   ██╗██████╗ ███████╗
 ████╗  ██║██║   ██║██╔══██╗╚══██╔══╝██║   ██║██╔══██╗██╔════╝
 ██╔██╗ ██║██║   ██║██████╔╝   ██║   ██║   ██║██████╔╝█████╗
 ██║╚██╗██║██║   ██║██╔══██╗   ██║   ██║   ██║██╔══██╗██╔══╝
 ██║ ╚████║╚██████╔╝██║  ██║   ██║   ╚██████╔╝██║  ██║███████╗
 ╚═╝  ╚═══╝ ╚═════╝ ╚═╝  ╚═╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚══════╝`

const bannerCompact = "N U R T U R E"

// RenderBanner returns the NURTURE banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 66 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 66 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
