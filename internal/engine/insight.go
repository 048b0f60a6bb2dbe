package engine

import (
	"fmt"
	"math"

	"github.com/theirongolddev/pocket/internal/model"
)

// Insights walks the budget views in order and emits at most one
// per-budget insight each, by priority: exceeded beats near-limit beats
// at-risk forecast. A single cross-budget reallocation pass follows,
// and an all-clear is emitted only when nothing else was.
//
// Iteration order is the caller's (stable) budget order, so output is
// deterministic for a given snapshot.
func Insights(views []model.BudgetView, p Policy) []model.Insight {
	var out []model.Insight

	for _, v := range views {
		if v.Budget.GoalAmount <= 0 {
			continue
		}

		switch {
		case v.Exceeded:
			out = append(out, model.Insight{
				Kind:     model.InsightBudgetExceeded,
				BudgetID: v.Budget.ID,
				Title:    fmt.Sprintf("%s budget exceeded", v.CategoryName),
				Message: fmt.Sprintf("Spent %.2f of %.2f for %s.",
					v.Spent, v.Budget.GoalAmount, v.CategoryName),
			})

		case v.Status == model.StatusNearLimit:
			pct := int(math.Round(v.Ratio * 100))
			out = append(out, model.Insight{
				Kind:     model.InsightBudgetAlert,
				BudgetID: v.Budget.ID,
				Title:    fmt.Sprintf("%s budget at %d%%", v.CategoryName, pct),
				Message: fmt.Sprintf("You've used %d%% of your %s budget.",
					pct, v.CategoryName),
				Percent: pct,
			})

		case v.Forecast != nil && v.Forecast.AtRisk:
			overage := v.Forecast.ProjectedTotal - v.Budget.GoalAmount
			out = append(out, model.Insight{
				Kind:     model.InsightOverspendingForecast,
				BudgetID: v.Budget.ID,
				Title:    fmt.Sprintf("%s on pace to overspend", v.CategoryName),
				Message: fmt.Sprintf("At the current pace, %s will exceed its goal by %.2f.",
					v.CategoryName, overage),
				Amount: overage,
			})
		}
	}

	if tip, ok := reallocationTip(views, p); ok {
		out = append(out, tip)
	}

	if len(out) == 0 {
		out = append(out, model.Insight{
			Kind:    model.InsightAllClear,
			Title:   "All clear",
			Message: "All budgets are on track.",
		})
	}

	return out
}

// reallocationTip pairs the most-underutilized budget with the
// most-overutilized one. Ties break toward the ratio furthest from 0
// and 1 respectively, which the min/max scan below gives us directly.
func reallocationTip(views []model.BudgetView, p Policy) (model.Insight, bool) {
	var under, over *model.BudgetView
	for i := range views {
		v := &views[i]
		if v.Budget.GoalAmount <= 0 {
			continue
		}
		if v.Ratio < p.UnderusedRatio {
			if under == nil || v.Ratio < under.Ratio {
				under = v
			}
		}
		if v.Ratio >= p.OverusedRatio {
			if over == nil || v.Ratio > over.Ratio {
				over = v
			}
		}
	}

	if under == nil || over == nil || under.Budget.ID == over.Budget.ID {
		return model.Insight{}, false
	}

	return model.Insight{
		Kind:  model.InsightOptimizationTip,
		Title: "Consider reallocating budget",
		Message: fmt.Sprintf("%s is barely used (%.0f%%) while %s is running hot (%.0f%%). Consider shifting budget between them.",
			under.CategoryName, under.Ratio*100, over.CategoryName, over.Ratio*100),
	}, true
}
