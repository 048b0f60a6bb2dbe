// Package recur expands recurring-transaction templates into concrete
// dated occurrences. Expansion is a pure function of the template and
// the caller-supplied bounds: the same inputs always produce the same
// ordered sequence of dates.
package recur

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/pocket/internal/model"
)

// Options bounds an expansion. Horizon is required for open-ended
// templates; nothing is ever generated past it. After, when set, is an
// additional strict lower bound so repeated materialization passes
// never emit a date twice.
type Options struct {
	Horizon time.Time
	After   *time.Time
}

// Expand generates the dated occurrences of template from its start
// date up to the earlier of its end date and opts.Horizon. Occurrences
// copy the template's fields with a fresh ID, the stepped date,
// Confirmed set, and no recurrence descriptor of their own.
func Expand(template model.Transaction, opts Options) ([]model.Transaction, error) {
	if template.Recurrence == nil {
		return nil, fmt.Errorf("transaction %s has no recurrence", template.ID)
	}
	if err := template.Validate(); err != nil {
		return nil, err
	}

	start := model.Midnight(template.Date)
	horizon := model.Midnight(opts.Horizon)
	if horizon.Before(start) {
		return nil, fmt.Errorf("template %s: %w", template.ID, model.ErrHorizonBeforeStart)
	}

	rec := *template.Recurrence
	if rec.EndDate != nil && rec.EndDate.Before(horizon) {
		horizon = model.Midnight(*rec.EndDate)
	}

	var occurrences []model.Transaction
	for _, d := range dates(start, rec, horizon) {
		if opts.After != nil && !d.After(model.Midnight(*opts.After)) {
			continue
		}
		occurrences = append(occurrences, occurrence(template, d))
	}
	return occurrences, nil
}

// dates walks the recurrence from start to the (already clamped)
// horizon, inclusive.
func dates(start time.Time, rec model.Recurrence, horizon time.Time) []time.Time {
	var out []time.Time

	switch rec.Frequency {
	case model.FreqDaily:
		for d := start; !d.After(horizon); d = d.AddDate(0, 0, 1) {
			out = append(out, d)
		}

	case model.FreqWeekly:
		// Align to the first occurrence of the weekday on or after the
		// start date, then step by whole weeks.
		d := start
		offset := (int(*rec.Weekday) - int(d.Weekday()) + 7) % 7
		d = d.AddDate(0, 0, offset)
		for ; !d.After(horizon); d = d.AddDate(0, 0, 7) {
			out = append(out, d)
		}

	case model.FreqMonthly:
		// Step from the anchor day-of-month, clamping to the last day
		// of shorter months (Jan 31 -> Feb 28/29). AddDate would
		// normalize Feb 31 into March, so months are computed from the
		// anchor each step instead of from the previous occurrence.
		anchorDay := start.Day()
		for i := 0; ; i++ {
			d := clampedMonth(start.Year(), start.Month()+time.Month(i), anchorDay)
			if d.After(horizon) {
				break
			}
			out = append(out, d)
		}

	case model.FreqYearly:
		// Same clamping rule, for Feb 29 anchors in non-leap years.
		anchorDay := start.Day()
		for y := start.Year(); ; y++ {
			d := clampedMonth(y, start.Month(), anchorDay)
			if d.After(horizon) {
				break
			}
			out = append(out, d)
		}
	}

	return out
}

// clampedMonth builds a date in the given month, clamping day to the
// month's length. Month may be out of [1,12]; time.Date normalizes it.
func clampedMonth(year int, month time.Month, day int) time.Time {
	norm := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if last := model.DaysInMonth(norm.Year(), norm.Month()); day > last {
		day = last
	}
	return time.Date(norm.Year(), norm.Month(), day, 0, 0, 0, 0, time.UTC)
}

// occurrence materializes one dated instance of the template.
func occurrence(template model.Transaction, date time.Time) model.Transaction {
	return model.Transaction{
		ID:         uuid.NewString(),
		Type:       template.Type,
		Amount:     template.Amount,
		CategoryID: template.CategoryID,
		Note:       template.Note,
		Date:       date,
		Confirmed:  true, // system-generated occurrences are confirmed
	}
}
