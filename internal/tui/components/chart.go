package components

import (
	"math"
	"strings"

	"github.com/theirongolddev/coopcost/internal/model"
	"github.com/theirongolddev/coopcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline scaled between the minimum and
// maximum of values. The cell at mark, if in range, uses the accent color.
func Sparkline(values []float64, mark int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo

	base := lipgloss.NewStyle().Foreground(t.TextMuted)
	hl := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var buf strings.Builder
	for i, v := range values {
		idx := len(blocks) / 2
		if span > 0 {
			idx = int((v - lo) / span * float64(len(blocks)-1))
		}
		idx = max(0, min(idx, len(blocks)-1))
		cell := string(blocks[idx])
		if i == mark {
			buf.WriteString(hl.Render(cell))
		} else {
			buf.WriteString(base.Render(cell))
		}
	}
	return buf.String()
}

// StackedBar renders amounts as one horizontal bar of width cells, each
// category colored from the theme palette. peak is the total that fills the
// whole width; zero means the bar's own total.
func StackedBar(amounts model.Amounts, peak float64, width int) string {
	if width <= 0 || len(amounts) == 0 {
		return ""
	}
	t := theme.Active
	if peak <= 0 {
		peak = amounts.Total()
	}
	if peak <= 0 {
		return strings.Repeat(" ", width)
	}

	var buf strings.Builder
	used := 0
	running := 0.0
	for i, a := range amounts {
		if a.Value <= 0 {
			continue
		}
		running += a.Value
		end := min(int(math.Round(running/peak*float64(width))), width)
		if end > used {
			style := lipgloss.NewStyle().Foreground(t.Category(i))
			buf.WriteString(style.Render(strings.Repeat("█", end-used)))
			used = end
		}
	}
	buf.WriteString(strings.Repeat(" ", width-used))
	return buf.String()
}

// Legend renders a colored swatch and name per category.
func Legend(categories []string) string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted)

	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = lipgloss.NewStyle().Foreground(t.Category(i)).Render("█") + " " + label.Render(c)
	}
	return strings.Join(parts, "  ")
}

// Bar renders value as a single-color bar of width cells, full at peak.
func Bar(value, peak float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if peak > 0 && value > 0 {
		filled = min(int(math.Round(value/peak*float64(width))), width)
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		strings.Repeat(" ", width-filled)
}
