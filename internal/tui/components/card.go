// Package components provides reusable TUI widgets for the coopcost explorer.
package components

import (
	"github.com/theirongolddev/coopcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// Panel renders a bordered panel with an optional title. A focused panel
// gets the accent border. outerWidth includes the border.
func Panel(title, body string, outerWidth int, focused bool) string {
	t := theme.Active

	border := t.Border
	if focused {
		border = t.BorderAccent
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return style.Render(content)
}

// PanelRow joins pre-rendered panels horizontally.
func PanelRow(panels ...string) string {
	if len(panels) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

// PanelInnerWidth returns the usable text width inside a Panel given its
// outer width (subtracts border + padding).
func PanelInnerWidth(outerWidth int) int {
	return max(outerWidth-4, 10)
}
