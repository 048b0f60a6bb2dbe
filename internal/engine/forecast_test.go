package engine

import (
	"math"
	"testing"

	"github.com/theirongolddev/pocket/internal/model"
)

func janBudget(t *testing.T, goal float64) model.Budget {
	t.Helper()
	return model.Budget{
		ID:         "b1",
		GoalAmount: goal,
		StartDate:  mustDate(t, "2024-01-01"),
		EndDate:    mustDate(t, "2024-01-31"),
	}
}

func TestForecast_MidPeriodProjection(t *testing.T) {
	b := janBudget(t, 1000)

	fc, ok := Forecast(b, 800, mustDate(t, "2024-01-16"))
	if !ok {
		t.Fatal("Forecast skipped an in-progress period")
	}

	// 16 elapsed days at 50/day over a 31-day period.
	if math.Abs(fc.ProjectedTotal-1550) > 1e-9 {
		t.Errorf("ProjectedTotal = %v, want 1550", fc.ProjectedTotal)
	}
	if !fc.AtRisk {
		t.Error("AtRisk = false, want true (1550 > 1000 and 800 < 1000)")
	}
}

func TestForecast_StartDateHasElapsedOne(t *testing.T) {
	b := janBudget(t, 1000)

	fc, ok := Forecast(b, 31, mustDate(t, "2024-01-01"))
	if !ok {
		t.Fatal("Forecast skipped the period start date")
	}
	if math.Abs(fc.ProjectedTotal-31*31) > 1e-9 {
		t.Errorf("ProjectedTotal = %v, want %v", fc.ProjectedTotal, 31*31)
	}
}

func TestForecast_LastDayProjectsActualSpend(t *testing.T) {
	b := janBudget(t, 1000)

	fc, ok := Forecast(b, 620, mustDate(t, "2024-01-31"))
	if !ok {
		t.Fatal("Forecast skipped the period end date")
	}
	if math.Abs(fc.ProjectedTotal-620) > 1e-9 {
		t.Errorf("ProjectedTotal on last day = %v, want 620", fc.ProjectedTotal)
	}
}

func TestForecast_AlreadyExceededIsNotAtRisk(t *testing.T) {
	b := janBudget(t, 1000)

	fc, ok := Forecast(b, 1200, mustDate(t, "2024-01-16"))
	if !ok {
		t.Fatal("Forecast skipped an in-progress period")
	}
	if fc.AtRisk {
		t.Error("AtRisk = true for already-exceeded budget, want false (classifier's job)")
	}
}

func TestForecast_SkipsFutureAndExpiredPeriods(t *testing.T) {
	b := janBudget(t, 1000)

	if _, ok := Forecast(b, 0, mustDate(t, "2023-12-31")); ok {
		t.Error("Forecast produced a projection before the period started")
	}
	if _, ok := Forecast(b, 500, mustDate(t, "2024-02-01")); ok {
		t.Error("Forecast produced a projection for an expired period")
	}
}
