// Package engine computes derived budget state from a transaction
// snapshot: period spend, health classification, end-of-period
// forecasts, and the prioritized insight list. Everything here is a
// pure function of its inputs; nothing is cached or mutated.
package engine

// Policy holds the ratio thresholds driving classification and the
// reallocation pass. The defaults are deliberate product choices, not
// derived values, so they live in config rather than as constants.
type Policy struct {
	// NearLimitRatio is the spent/goal ratio at or above which a budget
	// is flagged before it is actually exceeded.
	NearLimitRatio float64
	// UnderusedRatio marks a budget as a reallocation source when its
	// ratio is strictly below it.
	UnderusedRatio float64
	// OverusedRatio marks a budget as a reallocation target when its
	// ratio is at or above it.
	OverusedRatio float64
}

// DefaultPolicy returns the stock thresholds: near-limit at 80%,
// underutilized below 30%, overutilized at 80%.
func DefaultPolicy() Policy {
	return Policy{
		NearLimitRatio: 0.8,
		UnderusedRatio: 0.3,
		OverusedRatio:  0.8,
	}
}
