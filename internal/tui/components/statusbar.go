package components

import (
	"strings"

	"github.com/theirongolddev/coopcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with left and right
// aligned segments.
func RenderStatusBar(width int, left, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return style.Render(left + strings.Repeat(" ", padding) + right)
}

// RenderTabs renders view names with the active one highlighted.
func RenderTabs(names []string, active int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextDim).Padding(0, 1)

	parts := make([]string, len(names))
	for i, n := range names {
		if i == active {
			parts[i] = activeStyle.Render(n)
		} else {
			parts[i] = inactiveStyle.Render(n)
		}
	}
	return strings.Join(parts, "│")
}
