package cli

import (
	"testing"
	"time"

	"github.com/theirongolddev/pocket/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{9.5, "9.50"},
		{1234.5, "1,234.50"},
		{1000000, "1,000,000.00"},
		{-12.3, "-12.30"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRecurrence(t *testing.T) {
	if got := FormatRecurrence(nil); got != "" {
		t.Errorf("FormatRecurrence(nil) = %q, want empty", got)
	}

	fri := time.Friday
	end := model.Date(2024, time.December, 31)

	r := &model.Recurrence{Frequency: model.FreqWeekly, Weekday: &fri}
	if got := FormatRecurrence(r); got != "weekly on Fri" {
		t.Errorf("FormatRecurrence = %q, want %q", got, "weekly on Fri")
	}

	r = &model.Recurrence{Frequency: model.FreqMonthly, EndDate: &end}
	if got := FormatRecurrence(r); got != "monthly until 2024-12-31" {
		t.Errorf("FormatRecurrence = %q, want %q", got, "monthly until 2024-12-31")
	}
}
