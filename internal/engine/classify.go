package engine

import "github.com/theirongolddev/pocket/internal/model"

// Classify maps spend against goal to a health status. A zero (or
// negative) goal is not trackable and always classifies as NoBudget.
// The near-limit band is inclusive on both ends: exactly 80% and
// exactly 100% are both NearLimit under the default policy.
func Classify(spent, goal float64, p Policy) model.BudgetStatus {
	if goal <= 0 {
		return model.StatusNoBudget
	}

	ratio := spent / goal
	switch {
	case ratio > 1.0:
		return model.StatusOverBudget
	case ratio >= p.NearLimitRatio:
		return model.StatusNearLimit
	default:
		return model.StatusOnTrack
	}
}
