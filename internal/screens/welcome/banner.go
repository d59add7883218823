package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/ui/theme"
)

const bannerArt = `
 ██╗    ██╗ ██████╗ ██████╗ ██╗  ██╗███████╗██╗  ██╗███████╗███████╗████████╗███████╗
 ██║    ██║██╔═══██╗██╔══██╗██║ ██╔╝██╔════╝██║  ██║██╔════╝██╔════╝╚══██╔══╝╚══███╔╝
 ██║ █╗ ██║██║   ██║██████╔╝█████╔╝ ███████╗███████║█████╗  █████╗     ██║     ███╔╝
 ██║███╗██║██║   ██║██╔══██╗██╔═██╗ ╚════██║██╔══██║██╔══╝  ██╔══╝     ██║    ███╔╝
 ╚███╔███╔╝╚██████╔╝██║  ██║██║  ██╗███████║██║  ██║███████╗███████╗   ██║   ███████╗
  ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝   ╚═╝   ╚══════╝`

const bannerCompact = "W O R K S H E E T Z"

// RenderBanner returns the banner styled in the primary color. Terminals
// narrower than the art get the spaced-out fallback.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 88 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
