package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/pocket/internal/cli"
	"github.com/theirongolddev/pocket/internal/tui/components"
	"github.com/theirongolddev/pocket/internal/tui/theme"
)

func (a App) renderBudgetsTab(cw int) string {
	t := theme.Active

	if len(a.views) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n" + empty.Render("  No budgets yet. Create one with `pocket budget add`.")
	}

	var b strings.Builder

	// Left: budget list with cursor. Right (wide layouts): detail card.
	listW := cw
	detailW := 0
	if !a.isCompactLayout() {
		halves := components.LayoutRow(cw, 2)
		listW, detailW = halves[0], halves[1]
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var list strings.Builder
	nameW := 18
	for i, v := range a.views {
		status := v.Status.String()
		if v.Expired {
			status = "Expired"
		}
		line := fmt.Sprintf(" %-*s %10s / %-10s %s",
			nameW, truncStr(v.Budget.Name, nameW),
			cli.FormatMoney(v.Spent), cli.FormatMoney(v.Budget.GoalAmount),
			status)
		line = truncStr(line, components.CardInnerWidth(listW))
		if i == a.budCursor {
			list.WriteString(selStyle.Render(line))
		} else {
			list.WriteString(rowStyle.Render(line))
		}
		list.WriteString("\n")
		bar := components.BudgetBar("", v.Ratio, v.Status, 1, components.CardInnerWidth(listW)-8)
		list.WriteString(bar)
		if i < len(a.views)-1 {
			list.WriteString("\n")
		}
	}

	listCard := components.ContentCard("Budgets", strings.TrimRight(list.String(), "\n"), listW)

	if detailW == 0 {
		b.WriteString(listCard)
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("  j/k to select"))
		return b.String()
	}

	detailCard := components.ContentCard("Detail", a.renderBudgetDetail(components.CardInnerWidth(detailW)), detailW)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, listCard, detailCard))
	return b.String()
}

func (a App) renderBudgetDetail(width int) string {
	t := theme.Active
	v := a.views[a.budCursor]

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(components.StatusColor(v.Status))).
		Bold(true)

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(valueStyle.Render(truncStr(value, width-12)))
		b.WriteString("\n")
	}

	row("Name", v.Budget.Name)
	row("Category", v.CategoryName)
	row("Period", cli.FormatPeriod(v.Budget.StartDate, v.Budget.EndDate))
	row("Goal", cli.FormatMoney(v.Budget.GoalAmount))
	row("Spent", cli.FormatMoney(v.Spent))
	row("Used", cli.FormatPercent(v.Ratio))

	b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", "Status")))
	status := v.Status.String()
	if v.Expired {
		status = "Expired"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	if v.Forecast != nil {
		row("Projected", cli.FormatMoney(v.Forecast.ProjectedTotal))
		if v.Forecast.AtRisk {
			over := v.Forecast.ProjectedTotal - v.Budget.GoalAmount
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", "At risk")))
			b.WriteString(lipgloss.NewStyle().Foreground(t.Yellow).Render(
				fmt.Sprintf("projected %s over goal", cli.FormatMoney(over))))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
