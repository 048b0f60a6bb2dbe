package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/pocket/internal/cli"
	"github.com/theirongolddev/pocket/internal/model"
	"github.com/theirongolddev/pocket/internal/page"
	"github.com/theirongolddev/pocket/internal/tui/components"
	"github.com/theirongolddev/pocket/internal/tui/theme"
)

func (a App) renderTransactionsTab(cw, contentH int) string {
	t := theme.Active

	entries := a.entries
	if a.txState.pendingOnly {
		filtered := make([]model.Transaction, 0, len(entries))
		for _, e := range entries {
			if !e.Confirmed {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if len(entries) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted)
		if a.txState.pendingOnly {
			return "\n" + empty.Render("  No pending transactions. [f] shows all again.")
		}
		return "\n" + empty.Render("  No transactions. Add one with `pocket tx add`.")
	}

	// Fit the page to the visible area when it is tighter than the
	// configured page size.
	pageSize := a.pageSize
	if visible := contentH - 6; visible > 0 && visible < pageSize {
		pageSize = visible
	}
	pg := page.Paginate(entries, pageSize, a.txState.page)

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	pendingStyle := lipgloss.NewStyle().Foreground(t.Yellow)
	expenseStyle := lipgloss.NewStyle().Foreground(t.Red)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Green)

	inner := components.CardInnerWidth(cw)
	noteW := inner - 52
	if noteW < 8 {
		noteW = 8
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf(" %-10s %-8s %12s  %-14s %-*s",
		"Date", "Type", "Amount", "Category", noteW, "Note")))
	b.WriteString("\n")

	for _, tx := range pg.Items {
		amount := cli.FormatMoney(tx.Amount)
		amountStyle := incomeStyle
		if tx.Type == model.TypeExpense {
			amount = "-" + amount
			amountStyle = expenseStyle
		}

		line := fmt.Sprintf(" %-10s %-8s ", cli.FormatDate(tx.Date), tx.Type)
		rest := fmt.Sprintf("  %-14s %-*s",
			truncStr(model.CategoryName(a.cats, tx.CategoryID), 14),
			noteW, truncStr(tx.Note, noteW))

		style := rowStyle
		if !tx.Confirmed {
			style = pendingStyle
			rest += " (pending)"
		}
		b.WriteString(style.Render(line))
		b.WriteString(amountStyle.Render(fmt.Sprintf("%12s", amount)))
		b.WriteString(style.Render(rest))
		b.WriteString("\n")
	}

	title := "Transactions"
	if a.txState.pendingOnly {
		title = "Transactions (pending only)"
	}

	card := components.ContentCard(title, strings.TrimRight(b.String(), "\n"), cw)

	footStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	footer := footStyle.Render(fmt.Sprintf("  Page %d/%d · %d transactions · [n]ext [p]rev [f]ilter",
		pg.CurrentPage, pg.TotalPages, pg.TotalItems))

	return card + "\n" + footer
}
