package engine

import (
	"time"

	"github.com/theirongolddev/pocket/internal/model"
)

// SpentFor sums confirmed expense amounts that fall inside the budget's
// inclusive date window and match its category scope. Spend is always
// recomputed from the ledger snapshot so it can never drift from it;
// at personal-finance data sizes the rescan is not worth caching.
func SpentFor(b model.Budget, txs []model.Transaction) float64 {
	var spent float64
	for _, tx := range txs {
		if !tx.Confirmed || tx.Type != model.TypeExpense {
			continue
		}
		if tx.Date.Before(b.StartDate) || tx.Date.After(b.EndDate) {
			continue
		}
		if b.CategoryID != "" && tx.CategoryID != b.CategoryID {
			continue
		}
		spent += tx.Amount
	}
	return spent
}

// BuildViews derives the full view model for every budget, preserving
// the caller-supplied budget order.
func BuildViews(budgets []model.Budget, txs []model.Transaction, cats []model.Category, asOf time.Time, p Policy) []model.BudgetView {
	views := make([]model.BudgetView, 0, len(budgets))
	for _, b := range budgets {
		views = append(views, buildView(b, txs, cats, asOf, p))
	}
	return views
}

func buildView(b model.Budget, txs []model.Transaction, cats []model.Category, asOf time.Time, p Policy) model.BudgetView {
	spent := SpentFor(b, txs)

	v := model.BudgetView{
		Budget:       b,
		CategoryName: categoryLabel(b, cats),
		Spent:        spent,
		Status:       Classify(spent, b.GoalAmount, p),
		Expired:      b.Expired(asOf),
		Exceeded:     spent > b.GoalAmount && b.GoalAmount > 0,
	}
	if b.GoalAmount > 0 {
		v.Ratio = spent / b.GoalAmount
	}
	if fc, ok := Forecast(b, spent, asOf); ok {
		v.Forecast = &fc
	}
	return v
}

func categoryLabel(b model.Budget, cats []model.Category) string {
	if b.CategoryID == "" {
		return "All Categories"
	}
	return model.CategoryName(cats, b.CategoryID)
}
