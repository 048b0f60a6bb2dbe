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

const sparklineDays = 14

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		b.WriteString(errStyle.Render(fmt.Sprintf("  Ledger error: %v", a.loadErr)))
		b.WriteString("\n")
	}

	spent, income := a.monthTotals()
	alerts := 0
	for _, in := range a.insights {
		if in.Kind == model.InsightBudgetExceeded || in.Kind == model.InsightBudgetAlert {
			alerts++
		}
	}

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Detail string }{
		{"Spent", cli.FormatMoney(spent), "this month"},
		{"Income", cli.FormatMoney(income), "this month"},
		{"Net", cli.FormatMoney(income - spent), "this month"},
		{"Budgets", fmt.Sprintf("%d", len(a.views)), fmt.Sprintf("%d alerts", alerts)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Daily spend sparkline
	daily := a.dailySpend(sparklineDays)
	var total float64
	for _, v := range daily {
		total += v
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Daily Spend (last %dd, %s)", sparklineDays, cli.FormatMoney(total)),
		components.Sparkline(daily, t.Blue),
		cw,
	))
	b.WriteString("\n")

	// Row 3: Budget bars
	if len(a.views) > 0 {
		labelW := 0
		for _, v := range a.views {
			if len(v.Budget.Name) > labelW {
				labelW = len(v.Budget.Name)
			}
		}
		if labelW > 20 {
			labelW = 20
		}
		barW := components.CardInnerWidth(cw) - labelW - 7
		if barW < 10 {
			barW = 10
		}

		var bars strings.Builder
		for i, v := range a.views {
			if i > 0 {
				bars.WriteString("\n")
			}
			bars.WriteString(components.BudgetBar(truncStr(v.Budget.Name, labelW), v.Ratio, v.Status, labelW, barW))
		}
		b.WriteString(components.ContentCard("Budgets", bars.String(), cw))
		b.WriteString("\n")
	}

	// Row 4: Top insights
	if len(a.insights) > 0 {
		limit := 4
		if len(a.insights) < limit {
			limit = len(a.insights)
		}
		var lines strings.Builder
		for i := 0; i < limit; i++ {
			if i > 0 {
				lines.WriteString("\n")
			}
			lines.WriteString(renderInsightLine(a.insights[i], components.CardInnerWidth(cw)))
		}
		b.WriteString(components.ContentCard("Insights", lines.String(), cw))
	}

	return b.String()
}

// monthTotals sums confirmed expenses and income for the asOf month.
func (a App) monthTotals() (spent, income float64) {
	y, m, _ := a.asOf.UTC().Date()
	for _, t := range a.entries {
		if !t.Confirmed {
			continue
		}
		ty, tm, _ := t.Date.UTC().Date()
		if ty != y || tm != m {
			continue
		}
		switch t.Type {
		case model.TypeExpense:
			spent += t.Amount
		case model.TypeIncome:
			income += t.Amount
		}
	}
	return spent, income
}

// dailySpend buckets confirmed expenses per day over the trailing
// window ending at asOf, oldest first.
func (a App) dailySpend(days int) []float64 {
	out := make([]float64, days)
	start := a.asOf.AddDate(0, 0, -(days - 1))
	for _, t := range a.entries {
		if !t.Confirmed || t.Type != model.TypeExpense {
			continue
		}
		if t.Date.Before(start) || t.Date.After(a.asOf) {
			continue
		}
		idx := model.DaysBetween(start, t.Date)
		if idx >= 0 && idx < days {
			out[idx] += t.Amount
		}
	}
	return out
}

func renderInsightLine(in model.Insight, width int) string {
	t := theme.Active

	color := t.TextMuted
	switch in.Kind {
	case model.InsightBudgetExceeded:
		color = t.Red
	case model.InsightBudgetAlert:
		color = t.Orange
	case model.InsightOverspendingForecast:
		color = t.Yellow
	case model.InsightOptimizationTip:
		color = t.Blue
	case model.InsightAllClear:
		color = t.Green
	}

	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	msgRoom := width - len(in.Title) - 2
	if msgRoom < 0 {
		msgRoom = 0
	}
	return titleStyle.Render(in.Title) + msgStyle.Render("  "+truncStr(in.Message, msgRoom))
}
