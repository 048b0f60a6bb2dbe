package model

import (
	"errors"
	"fmt"
)

// Validation failures are typed so callers can distinguish malformed
// input from engine results. Degraded data (unknown categories, missing
// notes) is deliberately not represented here.
var (
	ErrInvalidType        = errors.New("transaction type must be income or expense")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrNegativeGoal       = errors.New("goal amount must not be negative")
	ErrInvalidPeriod      = errors.New("budget end date must be after start date")
	ErrInvalidFrequency   = errors.New("unknown recurrence frequency")
	ErrMissingWeekday     = errors.New("weekly recurrence requires a weekday")
	ErrHorizonBeforeStart = errors.New("expansion horizon is before the template start date")
)

// Validate checks the invariants every transaction must satisfy before
// the engine accepts it.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("transaction %s: %w", t.ID, ErrInvalidType)
	}
	if t.Amount < 0 {
		return fmt.Errorf("transaction %s: %w", t.ID, ErrNegativeAmount)
	}
	if t.Recurrence != nil {
		if err := t.Recurrence.Validate(); err != nil {
			return fmt.Errorf("transaction %s: %w", t.ID, err)
		}
	}
	return nil
}

// Validate checks the recurrence descriptor invariants.
func (r Recurrence) Validate() error {
	if !r.Frequency.Valid() {
		return ErrInvalidFrequency
	}
	if r.Frequency == FreqWeekly && r.Weekday == nil {
		return ErrMissingWeekday
	}
	return nil
}

// Validate checks the invariants every budget must satisfy before the
// engine accepts it.
func (b Budget) Validate() error {
	if b.GoalAmount < 0 {
		return fmt.Errorf("budget %s: %w", b.ID, ErrNegativeGoal)
	}
	if !b.EndDate.After(b.StartDate) {
		return fmt.Errorf("budget %s: %w", b.ID, ErrInvalidPeriod)
	}
	return nil
}
