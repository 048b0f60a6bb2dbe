package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/pocket/internal/model"
	"github.com/theirongolddev/pocket/internal/tui/theme"
)

// StatusColor maps a budget status to its theme color string.
func StatusColor(s model.BudgetStatus) string {
	t := theme.Active
	switch s {
	case model.StatusOverBudget:
		return string(t.Red)
	case model.StatusNearLimit:
		return string(t.Orange)
	case model.StatusOnTrack:
		return string(t.Green)
	default:
		return string(t.TextDim)
	}
}

// BudgetBar renders a labeled spend bar with the percent used.
// The fill keeps growing past 100% visually capped at full width.
func BudgetBar(label string, ratio float64, status model.BudgetStatus, labelW, barWidth int) string {
	t := theme.Active

	pct := ratio
	if pct < 0 {
		pct = 0
	}
	display := pct
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(StatusColor(status)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(StatusColor(status))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", display*100))
}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}
