package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/pocket/internal/cli"
	"github.com/theirongolddev/pocket/internal/model"
	"github.com/theirongolddev/pocket/internal/tui/components"
	"github.com/theirongolddev/pocket/internal/tui/theme"
)

func (a App) renderUpcomingTab(cw, contentH int) string {
	t := theme.Active

	if len(a.upcoming) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n" + empty.Render(fmt.Sprintf("  Nothing due through %s.", a.horizon.Format(model.DateFormat)))
	}

	limit := contentH - 5
	if limit < 1 {
		limit = 1
	}
	items := a.upcoming
	truncated := 0
	if len(items) > limit {
		truncated = len(items) - limit
		items = items[:limit]
	}

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	expenseStyle := lipgloss.NewStyle().Foreground(t.Red)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Green)

	inner := components.CardInnerWidth(cw)
	noteW := inner - 42
	if noteW < 8 {
		noteW = 8
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf(" %-10s %12s  %-14s %-*s",
		"Date", "Amount", "Category", noteW, "Note")))
	b.WriteString("\n")

	for _, tx := range items {
		amount := cli.FormatMoney(tx.Amount)
		amountStyle := incomeStyle
		if tx.Type == model.TypeExpense {
			amount = "-" + amount
			amountStyle = expenseStyle
		}
		b.WriteString(rowStyle.Render(fmt.Sprintf(" %-10s ", cli.FormatDate(tx.Date))))
		b.WriteString(amountStyle.Render(fmt.Sprintf("%12s", amount)))
		b.WriteString(rowStyle.Render(fmt.Sprintf("  %-14s %-*s",
			truncStr(model.CategoryName(a.cats, tx.CategoryID), 14),
			noteW, truncStr(tx.Note, noteW))))
		b.WriteString("\n")
	}

	title := fmt.Sprintf("Upcoming through %s", a.horizon.Format(model.DateFormat))
	card := components.ContentCard(title, strings.TrimRight(b.String(), "\n"), cw)

	footStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	footer := footStyle.Render("  Record these with `pocket upcoming --materialize`")
	if truncated > 0 {
		footer += footStyle.Render(fmt.Sprintf(" · %d more not shown", truncated))
	}

	return card + "\n" + footer
}
