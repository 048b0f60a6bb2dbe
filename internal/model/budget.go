package model

import "time"

// Budget tracks spend against a goal amount over an inclusive date
// window. An empty CategoryID means the budget covers expenses in every
// category. Spent, expiry, and exceeded state are always derived from
// the transaction ledger, never stored.
type Budget struct {
	ID         string
	Name       string
	CategoryID string // empty = all categories
	GoalAmount float64
	StartDate  time.Time
	EndDate    time.Time
}

// Expired reports whether the budget period ended before asOf.
func (b Budget) Expired(asOf time.Time) bool {
	return asOf.After(b.EndDate)
}

// PeriodDays is the inclusive day count of the budget window.
func (b Budget) PeriodDays() int {
	return int(b.EndDate.Sub(b.StartDate).Hours()/24) + 1
}

// BudgetStatus is the health classification of a budget's spend against
// its goal.
type BudgetStatus int

const (
	// StatusNoBudget means the goal is zero or negative, so the budget
	// is not trackable.
	StatusNoBudget BudgetStatus = iota
	StatusOnTrack
	StatusNearLimit
	StatusOverBudget
)

// String returns the display label for the status.
func (s BudgetStatus) String() string {
	switch s {
	case StatusNoBudget:
		return "No Budget"
	case StatusOnTrack:
		return "On Track"
	case StatusNearLimit:
		return "Near Limit"
	case StatusOverBudget:
		return "Over Budget"
	}
	return "Unknown"
}

// Forecast is the projected end-of-period outcome for an in-progress
// budget, derived from spend pace to date.
type Forecast struct {
	ProjectedTotal float64
	AtRisk         bool // projected over goal but not yet exceeded
}

// BudgetView is a budget plus everything derived from the current
// transaction snapshot. This is what the CLI, TUI, and daemon render.
type BudgetView struct {
	Budget       Budget
	CategoryName string
	Spent        float64
	Ratio        float64 // spent/goal, 0 when goal is 0
	Status       BudgetStatus
	Expired      bool
	Exceeded     bool      // spent > goal
	Forecast     *Forecast // nil when the period is expired or not started
}
