package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/pocket/internal/tui/components"
	"github.com/theirongolddev/pocket/internal/tui/theme"
)

func (a App) renderInsightsTab(cw int) string {
	t := theme.Active

	if len(a.insights) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n" + empty.Render("  No insights yet. Add budgets and transactions first.")
	}

	inner := components.CardInnerWidth(cw)
	kindStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, in := range a.insights {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(renderInsightLine(in, inner))
		b.WriteString("\n")
		b.WriteString(kindStyle.Render("  " + in.Kind.String()))
	}

	return components.ContentCard("Insights", b.String(), cw)
}
