package model

import (
	"errors"
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	base := Transaction{ID: "t1", Type: TypeExpense, Amount: 10, Date: Date(2024, time.March, 1)}

	if err := base.Validate(); err != nil {
		t.Errorf("valid transaction rejected: %v", err)
	}

	bad := base
	bad.Type = "transfer"
	if err := bad.Validate(); !errors.Is(err, ErrInvalidType) {
		t.Errorf("err = %v, want ErrInvalidType", err)
	}

	bad = base
	bad.Amount = -1
	if err := bad.Validate(); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("err = %v, want ErrNegativeAmount", err)
	}

	bad = base
	bad.Recurrence = &Recurrence{Frequency: FreqWeekly}
	if err := bad.Validate(); !errors.Is(err, ErrMissingWeekday) {
		t.Errorf("err = %v, want ErrMissingWeekday", err)
	}

	bad = base
	bad.Recurrence = &Recurrence{Frequency: "fortnightly"}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("err = %v, want ErrInvalidFrequency", err)
	}
}

func TestBudgetValidate(t *testing.T) {
	base := Budget{
		ID:         "b1",
		GoalAmount: 100,
		StartDate:  Date(2024, time.March, 1),
		EndDate:    Date(2024, time.March, 31),
	}

	if err := base.Validate(); err != nil {
		t.Errorf("valid budget rejected: %v", err)
	}

	bad := base
	bad.GoalAmount = -5
	if err := bad.Validate(); !errors.Is(err, ErrNegativeGoal) {
		t.Errorf("err = %v, want ErrNegativeGoal", err)
	}

	bad = base
	bad.EndDate = bad.StartDate
	if err := bad.Validate(); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("err = %v, want ErrInvalidPeriod", err)
	}
}

func TestCategoryNameFallback(t *testing.T) {
	cats := []Category{{ID: "c1", Name: "Groceries", Type: TypeExpense}}

	if got := CategoryName(cats, "c1"); got != "Groceries" {
		t.Errorf("CategoryName = %q, want Groceries", got)
	}
	if got := CategoryName(cats, "missing"); got != UnknownCategoryName {
		t.Errorf("CategoryName = %q, want %q", got, UnknownCategoryName)
	}
	if got := CategoryName(cats, ""); got != UnknownCategoryName {
		t.Errorf("CategoryName = %q, want %q", got, UnknownCategoryName)
	}
}

func TestDateHelpers(t *testing.T) {
	if got := DaysBetween(Date(2024, time.January, 1), Date(2024, time.January, 16)); got != 15 {
		t.Errorf("DaysBetween = %d, want 15", got)
	}
	if got := DaysInMonth(2024, time.February); got != 29 {
		t.Errorf("DaysInMonth(2024, Feb) = %d, want 29", got)
	}
	if got := DaysInMonth(2025, time.February); got != 28 {
		t.Errorf("DaysInMonth(2025, Feb) = %d, want 28", got)
	}

	b := Budget{StartDate: Date(2024, time.January, 1), EndDate: Date(2024, time.January, 31)}
	if got := b.PeriodDays(); got != 31 {
		t.Errorf("PeriodDays = %d, want 31", got)
	}
}
