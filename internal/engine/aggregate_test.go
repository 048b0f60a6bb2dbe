package engine

import (
	"testing"
	"time"

	"github.com/theirongolddev/pocket/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func expense(amount float64, category, date string, confirmed bool, t *testing.T) model.Transaction {
	t.Helper()
	return model.Transaction{
		ID:         "tx-" + date,
		Type:       model.TypeExpense,
		Amount:     amount,
		CategoryID: category,
		Date:       mustDate(t, date),
		Confirmed:  confirmed,
	}
}

func TestSpentFor_SumsConfirmedExpensesInWindow(t *testing.T) {
	b := model.Budget{
		ID:         "b1",
		CategoryID: "groceries",
		GoalAmount: 500,
		StartDate:  mustDate(t, "2024-03-01"),
		EndDate:    mustDate(t, "2024-03-31"),
	}

	txs := []model.Transaction{
		expense(50, "groceries", "2024-03-01", true, t),  // start date inclusive
		expense(25, "groceries", "2024-03-31", true, t),  // end date inclusive
		expense(10, "groceries", "2024-02-29", true, t),  // before window
		expense(10, "groceries", "2024-04-01", true, t),  // after window
		expense(99, "transport", "2024-03-10", true, t),  // wrong category
		expense(40, "groceries", "2024-03-15", false, t), // unconfirmed
	}

	if got := SpentFor(b, txs); got != 75 {
		t.Errorf("SpentFor = %v, want 75", got)
	}
}

func TestSpentFor_IncomeNeverContributes(t *testing.T) {
	b := model.Budget{
		ID:         "b1",
		CategoryID: "groceries",
		GoalAmount: 500,
		StartDate:  mustDate(t, "2024-03-01"),
		EndDate:    mustDate(t, "2024-03-31"),
	}

	txs := []model.Transaction{
		{
			ID:         "salary",
			Type:       model.TypeIncome,
			Amount:     3000,
			CategoryID: "groceries", // date and category both match
			Date:       mustDate(t, "2024-03-15"),
			Confirmed:  true,
		},
	}

	if got := SpentFor(b, txs); got != 0 {
		t.Errorf("SpentFor with only income = %v, want 0", got)
	}
}

func TestSpentFor_AllCategoriesBudget(t *testing.T) {
	b := model.Budget{
		ID:         "b-all",
		GoalAmount: 1000,
		StartDate:  mustDate(t, "2024-03-01"),
		EndDate:    mustDate(t, "2024-03-31"),
	}

	txs := []model.Transaction{
		expense(100, "groceries", "2024-03-05", true, t),
		expense(200, "transport", "2024-03-06", true, t),
		expense(50, "", "2024-03-07", true, t), // uncategorized still counts
	}

	if got := SpentFor(b, txs); got != 350 {
		t.Errorf("SpentFor for all-category budget = %v, want 350", got)
	}
}

func TestBuildViews_DerivedFields(t *testing.T) {
	cats := []model.Category{{ID: "groceries", Name: "Groceries", Type: model.TypeExpense}}
	budgets := []model.Budget{
		{
			ID:         "b1",
			CategoryID: "groceries",
			GoalAmount: 1000,
			StartDate:  mustDate(t, "2024-01-01"),
			EndDate:    mustDate(t, "2024-01-31"),
		},
		{
			ID:         "b2",
			CategoryID: "missing-cat",
			GoalAmount: 100,
			StartDate:  mustDate(t, "2024-01-01"),
			EndDate:    mustDate(t, "2024-01-31"),
		},
	}
	txs := []model.Transaction{
		expense(800, "groceries", "2024-01-10", true, t),
	}

	views := BuildViews(budgets, txs, cats, mustDate(t, "2024-01-16"), DefaultPolicy())
	if len(views) != 2 {
		t.Fatalf("len(views) = %d, want 2", len(views))
	}

	v := views[0]
	if v.Spent != 800 {
		t.Errorf("Spent = %v, want 800", v.Spent)
	}
	if v.Ratio != 0.8 {
		t.Errorf("Ratio = %v, want 0.8", v.Ratio)
	}
	if v.Status != model.StatusNearLimit {
		t.Errorf("Status = %v, want NearLimit", v.Status)
	}
	if v.Exceeded {
		t.Error("Exceeded = true, want false")
	}
	if v.Expired {
		t.Error("Expired = true, want false")
	}
	if v.Forecast == nil {
		t.Fatal("Forecast = nil, want a projection for an in-progress period")
	}
	if v.CategoryName != "Groceries" {
		t.Errorf("CategoryName = %q, want Groceries", v.CategoryName)
	}

	// Unknown category is degraded data, not an error.
	if views[1].CategoryName != model.UnknownCategoryName {
		t.Errorf("CategoryName = %q, want %q", views[1].CategoryName, model.UnknownCategoryName)
	}
}
