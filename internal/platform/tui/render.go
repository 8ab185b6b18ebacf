package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kitty-cannon/internal/core"
)

// colorStyles maps palette roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorSky:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorGround:    lipgloss.NewStyle().Foreground(lipgloss.Color("64")),
	core.ColorCannon:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
	core.ColorShell:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorTrail:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPreview:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorTarget:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorTargetHit: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorImpact:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorWarning:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorWind:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
