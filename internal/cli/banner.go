package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `  ___ ___ ___   _ _____ ___   ___ ___   _   ___ _____
 / __| _ \ __| /_\_   _| __| | _ \ __| /_\ / __|_   _|
| (__|   / _| / _ \| | | _|  |   / _| / _ \ (__  | |
 \___|_|_\___/_/ \_\_| |___| |_|_\___/_/ \_\___| |_|`

// PrintBanner writes the startup banner with the version.
func PrintBanner(w io.Writer, version string) {
	art := lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#61DAFB"}).Bold(true)
	_, _ = fmt.Fprintln(w, art.Render(bannerArt))
	_, _ = fmt.Fprintln(w, cliMuted.Render("  React + TypeScript + Vite project generator "+version))
	_, _ = fmt.Fprintln(w)
}
