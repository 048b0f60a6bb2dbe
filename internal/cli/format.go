// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/pocket/internal/model"
)

// FormatMoney formats an amount with two decimals and comma grouping.
// e.g., 1234.5 -> "1,234.50"
func FormatMoney(amount float64) string {
	cents := int64(math.Round(math.Abs(amount) * 100))
	s := fmt.Sprintf("%s.%02d", FormatNumber(cents/100), cents%100)
	if amount < 0 {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 ratio as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatDate formats a calendar date for display.
func FormatDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}

// FormatPeriod formats a budget window compactly.
func FormatPeriod(start, end time.Time) string {
	return fmt.Sprintf("%s – %s", start.Format("Jan 02"), end.Format("Jan 02, 2006"))
}

// FormatRecurrence describes a recurrence descriptor for display.
// e.g., "weekly on Fri until 2024-12-31", "monthly"
func FormatRecurrence(r *model.Recurrence) string {
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(string(r.Frequency))
	if r.Frequency == model.FreqWeekly && r.Weekday != nil {
		b.WriteString(" on ")
		b.WriteString(r.Weekday.String()[:3])
	}
	if r.EndDate != nil {
		b.WriteString(" until ")
		b.WriteString(r.EndDate.Format(model.DateFormat))
	}
	return b.String()
}
