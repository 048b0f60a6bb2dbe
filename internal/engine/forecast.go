package engine

import (
	"time"

	"github.com/theirongolddev/pocket/internal/model"
)

// Forecast projects the end-of-period total from spend pace to date.
// The second return is false when the period has not started or has
// already ended; a finished or future period has no meaningful pace.
func Forecast(b model.Budget, spent float64, asOf time.Time) (model.Forecast, bool) {
	if asOf.Before(b.StartDate) || b.Expired(asOf) {
		return model.Forecast{}, false
	}

	periodDays := b.PeriodDays()

	// Elapsed days is the inclusive count from the start date, clamped
	// to [1, periodDays] so pace is defined on the start date itself.
	elapsed := model.DaysBetween(b.StartDate, asOf) + 1
	if elapsed < 1 {
		elapsed = 1
	}
	if elapsed > periodDays {
		elapsed = periodDays
	}

	pace := spent / float64(elapsed)
	projected := pace * float64(periodDays)

	return model.Forecast{
		ProjectedTotal: projected,
		// An already-exceeded budget is the classifier's job; the
		// forecast only warns about budgets still under goal but on a
		// trajectory past it.
		AtRisk: projected > b.GoalAmount && spent < b.GoalAmount,
	}, true
}
