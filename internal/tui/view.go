package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/coopcost/internal/cli"
	"github.com/theirongolddev/coopcost/internal/model"
	"github.com/theirongolddev/coopcost/internal/tui/components"
	"github.com/theirongolddev/coopcost/internal/tui/theme"
)

// View implements tea.Model.
func (e Explorer) View() string {
	t := theme.Active

	if e.width > 0 && e.width < minTerminalWidth {
		return lipgloss.NewStyle().Foreground(t.Orange).
			Render(fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d)\n", e.width, minTerminalWidth))
	}

	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(" coopcost")
	header := title + "  " + components.RenderTabs(viewNames, int(e.view))

	mainWidth := max(e.width-sidebarWidth, 30)
	left := components.Panel("Variables", e.renderVariables(), sidebarWidth, true)

	var right string
	switch e.view {
	case viewSummary:
		right = components.Panel("Monthly Cost (whole house)", e.renderSummary(mainWidth), mainWidth, false)
	default:
		right = components.Panel("Monthly Cost per Resident", e.renderScenarios(mainWidth), mainWidth, false)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(components.PanelRow(left, right))
	b.WriteString("\n")
	if e.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(t.Red).Render(" " + e.err.Error()))
		b.WriteString("\n")
	}
	status := ""
	if n := len(e.recs.ScenarioOrder); n > 0 {
		status = fmt.Sprintf("%d scenarios  %d records ", n, e.recs.Len())
	}
	b.WriteString(components.RenderStatusBar(e.width, " "+e.help.View(e.keys), status))
	return b.String()
}

func (e Explorer) renderVariables() string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selected := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	inner := components.PanelInnerWidth(sidebarWidth)

	var b strings.Builder
	for i, v := range e.vars {
		name := v.Display()
		setting := cli.FormatSetting(v, e.vals[v.Name])
		gap := max(inner-lipgloss.Width(name)-lipgloss.Width(setting)-2, 1)

		if i == e.cursor {
			b.WriteString(selected.Render("▸ "+name) + strings.Repeat(" ", gap) + selected.Render(setting))
			b.WriteString("\n  ")
			b.WriteString(components.Sparkline(e.sweep, e.sweepMark))
		} else {
			b.WriteString(label.Render("  "+name) + strings.Repeat(" ", gap) + value.Render(setting))
		}
		if i < len(e.vars)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// perResident splits the per-resident records by scenario, in order.
func perResident(recs model.Records) []model.Amounts {
	out := make([]model.Amounts, len(recs.ScenarioOrder))
	idx := make(map[string]int, len(recs.ScenarioOrder))
	for i, name := range recs.ScenarioOrder {
		idx[name] = i
	}
	for _, r := range recs.MonthlyPerResident {
		i := idx[r.Scenario]
		out[i].Set(r.Category, r.Cost)
	}
	return out
}

func sumBy[T any](rows []T, scenario string, get func(T) (string, float64)) float64 {
	total := 0.0
	for _, r := range rows {
		if s, v := get(r); s == scenario {
			total += v
		}
	}
	return total
}

func (e Explorer) renderScenarios(width int) string {
	t := theme.Active
	name := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	inner := components.PanelInnerWidth(width)
	split := perResident(e.recs)
	totals := e.recs.ScenarioTotals()

	peak := 0.0
	for _, a := range totals {
		peak = max(peak, a.Value)
	}

	var b strings.Builder
	var categories []string
	seen := map[string]bool{}
	for i := range e.recs.ScenarioOrder {
		for _, c := range split[i].Categories() {
			if !seen[c] {
				seen[c] = true
				categories = append(categories, c)
			}
		}
	}

	for i, scenario := range e.recs.ScenarioOrder {
		// Align colors across scenarios by category.
		aligned := make(model.Amounts, 0, len(categories))
		for _, c := range categories {
			v, _ := split[i].Get(c)
			aligned = append(aligned, model.Amount{Category: c, Value: v})
		}

		residents := sumBy(e.recs.Residents, scenario, func(r model.CountRecord) (string, float64) { return r.Scenario, r.Count })
		upfront := sumBy(e.recs.Upfront, scenario, func(r model.CostRecord) (string, float64) { return r.Scenario, r.Cost })
		total, _ := totals.Get(scenario)

		b.WriteString(name.Render(scenario))
		b.WriteString("  ")
		b.WriteString(name.Render(cli.FormatCost(total) + "/mo"))
		b.WriteString("\n")
		b.WriteString(components.StackedBar(aligned, peak, inner))
		b.WriteString("\n")
		b.WriteString(muted.Render(fmt.Sprintf("%s residents · %s upfront",
			cli.FormatValue(model.FormatCount, model.Num(residents)), cli.FormatCost(upfront))))
		b.WriteString("\n\n")
	}
	b.WriteString(components.Legend(categories))
	return b.String()
}

func (e Explorer) renderSummary(width int) string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)

	inner := components.PanelInnerWidth(width)
	peak := 0.0
	for _, a := range e.costs {
		peak = max(peak, a.Value)
	}

	labelW := 0
	for _, a := range e.costs {
		labelW = max(labelW, lipgloss.Width(a.Category))
	}
	barW := max(inner-labelW-14, 5)

	var b strings.Builder
	for i, a := range e.costs {
		bar := components.Bar(a.Value, peak, barW, t.Category(i))
		fmt.Fprintf(&b, "%s %s %s\n",
			label.Render(fmt.Sprintf("%-*s", labelW, a.Category)),
			bar,
			value.Render(fmt.Sprintf("%12s", cli.FormatCost(a.Value))))
	}
	fmt.Fprintf(&b, "%s %s",
		label.Render(fmt.Sprintf("%-*s", labelW, "total")),
		value.Bold(true).Render(cli.FormatCost(e.costs.Total())))
	return b.String()
}
