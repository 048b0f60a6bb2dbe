package recur

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/pocket/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func template(t *testing.T, start string, freq model.Frequency) model.Transaction {
	t.Helper()
	return model.Transaction{
		ID:         "tmpl",
		Type:       model.TypeExpense,
		Amount:     9.99,
		CategoryID: "subscriptions",
		Note:       "streaming",
		Date:       mustDate(t, start),
		Confirmed:  true,
		Recurrence: &model.Recurrence{Frequency: freq},
	}
}

func gotDates(t *testing.T, occ []model.Transaction) []string {
	t.Helper()
	out := make([]string, len(occ))
	for i, o := range occ {
		out[i] = o.Date.Format(model.DateFormat)
	}
	return out
}

func assertDates(t *testing.T, occ []model.Transaction, want ...string) {
	t.Helper()
	got := gotDates(t, occ)
	if len(got) != len(want) {
		t.Fatalf("dates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dates = %v, want %v", got, want)
		}
	}
}

func TestExpand_Daily(t *testing.T) {
	tmpl := template(t, "2024-03-01", model.FreqDaily)

	occ, err := Expand(tmpl, Options{Horizon: mustDate(t, "2024-03-04")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDates(t, occ, "2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04")
}

func TestExpand_WeeklyAlignsToWeekday(t *testing.T) {
	// 2024-03-01 is a Friday; template fires on Mondays.
	tmpl := template(t, "2024-03-01", model.FreqWeekly)
	monday := time.Monday
	tmpl.Recurrence.Weekday = &monday

	occ, err := Expand(tmpl, Options{Horizon: mustDate(t, "2024-03-20")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDates(t, occ, "2024-03-04", "2024-03-11", "2024-03-18")
}

func TestExpand_WeeklyOnItsOwnWeekday(t *testing.T) {
	// Start date already a Monday: first occurrence is the start date.
	tmpl := template(t, "2024-03-04", model.FreqWeekly)
	monday := time.Monday
	tmpl.Recurrence.Weekday = &monday

	occ, err := Expand(tmpl, Options{Horizon: mustDate(t, "2024-03-11")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDates(t, occ, "2024-03-04", "2024-03-11")
}

func TestExpand_MonthlyClampsShortMonths(t *testing.T) {
	// Jan 31 anchor through a leap-year February.
	tmpl := template(t, "2024-01-31", model.FreqMonthly)

	occ, err := Expand(tmpl, Options{Horizon: mustDate(t, "2024-04-30")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDates(t, occ, "2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30")
}

func TestExpand_MonthlyKeepsAnchorAfterClamp(t *testing.T) {
	// The anchor day survives a clamped month: back to the 31st in May.
	tmpl := template(t, "2024-03-31", model.FreqMonthly)

	occ, err := Expand(tmpl, Options{Horizon: mustDate(t, "2024-05-31")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDates(t, occ, "2024-03-31", "2024-04-30", "2024-05-31")
}

func TestExpand_YearlyClampsLeapDay(t *testing.T) {
	tmpl := template(t, "2024-02-29", model.FreqYearly)

	occ, err := Expand(tmpl, Options{Horizon: mustDate(t, "2026-12-31")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDates(t, occ, "2024-02-29", "2025-02-28", "2026-02-28")
}

func TestExpand_EndDateBeatsHorizon(t *testing.T) {
	tmpl := template(t, "2024-03-01", model.FreqDaily)
	end := mustDate(t, "2024-03-03")
	tmpl.Recurrence.EndDate = &end

	occ, err := Expand(tmpl, Options{Horizon: mustDate(t, "2024-03-31")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDates(t, occ, "2024-03-01", "2024-03-02", "2024-03-03")
}

func TestExpand_AfterBoundSkipsMaterialized(t *testing.T) {
	tmpl := template(t, "2024-03-01", model.FreqDaily)
	last := mustDate(t, "2024-03-02")
	opts := Options{Horizon: mustDate(t, "2024-03-04"), After: &last}

	occ, err := Expand(tmpl, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Strictly after the bound: the 2nd itself is not re-emitted.
	assertDates(t, occ, "2024-03-03", "2024-03-04")
}

func TestExpand_Idempotent(t *testing.T) {
	tmpl := template(t, "2024-01-15", model.FreqMonthly)
	opts := Options{Horizon: mustDate(t, "2024-06-30")}

	first, err := Expand(tmpl, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Expand(tmpl, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, b := gotDates(t, first), gotDates(t, second)
	if len(a) != len(b) {
		t.Fatalf("repeated expansion lengths differ: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("repeated expansion dates differ: %v vs %v", a, b)
		}
	}
}

func TestExpand_OccurrenceFields(t *testing.T) {
	tmpl := template(t, "2024-03-01", model.FreqDaily)

	occ, err := Expand(tmpl, Options{Horizon: mustDate(t, "2024-03-02")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(occ) != 2 {
		t.Fatalf("len(occ) = %d, want 2", len(occ))
	}

	o := occ[0]
	if o.ID == "" || o.ID == tmpl.ID {
		t.Errorf("occurrence ID %q not freshly assigned", o.ID)
	}
	if occ[0].ID == occ[1].ID {
		t.Error("occurrences share an ID")
	}
	if o.Amount != tmpl.Amount || o.CategoryID != tmpl.CategoryID || o.Note != tmpl.Note {
		t.Errorf("occurrence did not copy template fields: %+v", o)
	}
	if !o.Confirmed {
		t.Error("system-generated occurrence not confirmed")
	}
	if o.Recurrence != nil {
		t.Error("occurrence carries a recurrence descriptor")
	}
}

func TestExpand_RejectsWeeklyWithoutWeekday(t *testing.T) {
	tmpl := template(t, "2024-03-01", model.FreqWeekly)

	_, err := Expand(tmpl, Options{Horizon: mustDate(t, "2024-03-31")})
	if !errors.Is(err, model.ErrMissingWeekday) {
		t.Errorf("err = %v, want ErrMissingWeekday", err)
	}
}

func TestExpand_RejectsHorizonBeforeStart(t *testing.T) {
	tmpl := template(t, "2024-03-10", model.FreqDaily)

	_, err := Expand(tmpl, Options{Horizon: mustDate(t, "2024-03-01")})
	if !errors.Is(err, model.ErrHorizonBeforeStart) {
		t.Errorf("err = %v, want ErrHorizonBeforeStart", err)
	}
}
