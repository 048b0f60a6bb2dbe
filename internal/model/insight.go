package model

// InsightKind is the closed set of insight/alert variants the engine
// can emit.
type InsightKind int

const (
	// InsightBudgetExceeded: spend has already passed the goal.
	InsightBudgetExceeded InsightKind = iota
	// InsightBudgetAlert: spend is near the limit (ratio within the
	// near-limit band).
	InsightBudgetAlert
	// InsightOverspendingForecast: current pace projects past the goal
	// before the period ends.
	InsightOverspendingForecast
	// InsightOptimizationTip: one budget is underutilized while another
	// is overutilized, suggesting reallocation.
	InsightOptimizationTip
	// InsightAllClear: no budget triggered anything.
	InsightAllClear
)

// String returns the display label for the insight kind.
func (k InsightKind) String() string {
	switch k {
	case InsightBudgetExceeded:
		return "Budget Exceeded"
	case InsightBudgetAlert:
		return "Budget Alert"
	case InsightOverspendingForecast:
		return "Overspending Forecast"
	case InsightOptimizationTip:
		return "Optimization Tip"
	case InsightAllClear:
		return "All Clear"
	}
	return "Unknown"
}

// Insight is one prioritized alert produced by the insight pass.
// Numeric payloads are kind-specific: Percent carries the spend
// percentage for alerts, Amount the projected overage for forecasts.
type Insight struct {
	Kind     InsightKind
	BudgetID string // empty for cross-budget and all-clear insights
	Title    string
	Message  string
	Percent  int     // InsightBudgetAlert: rounded spend percentage
	Amount   float64 // InsightOverspendingForecast: projected overage
}
