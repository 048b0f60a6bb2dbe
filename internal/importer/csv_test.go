package importer

import (
	"strings"
	"testing"

	"github.com/theirongolddev/pocket/internal/logger"
	"github.com/theirongolddev/pocket/internal/model"
)

var testCats = []model.Category{
	{ID: "c-groceries", Name: "Groceries", Type: model.TypeExpense},
	{ID: "c-salary", Name: "Salary", Type: model.TypeIncome},
}

func read(t *testing.T, csvData string) Result {
	t.Helper()
	return Read(strings.NewReader(csvData), testCats, logger.NewWithWriter(testWriter{t}))
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestRead_BasicRows(t *testing.T) {
	res := read(t, strings.Join([]string{
		"date,type,amount,category,note",
		"2024-03-01,expense,42.50,Groceries,weekly shop",
		"2024-03-02,income,3000,Salary,march pay",
	}, "\n"))

	if res.Skipped != 0 {
		t.Fatalf("Skipped = %d, want 0: %v", res.Skipped, res.Errors)
	}
	if len(res.Transactions) != 2 {
		t.Fatalf("len = %d, want 2", len(res.Transactions))
	}

	tx := res.Transactions[0]
	if tx.Type != model.TypeExpense || tx.Amount != 42.50 {
		t.Errorf("row 1 parsed wrong: %+v", tx)
	}
	if tx.CategoryID != "c-groceries" {
		t.Errorf("CategoryID = %q, want c-groceries", tx.CategoryID)
	}
	if tx.Confirmed {
		t.Error("imported transaction must arrive unconfirmed")
	}
	if tx.ID == "" || tx.ID == res.Transactions[1].ID {
		t.Error("imported transactions need fresh unique IDs")
	}
}

func TestRead_NoHeader(t *testing.T) {
	res := read(t, "2024-03-01,expense,10,Groceries,milk")

	if len(res.Transactions) != 1 {
		t.Fatalf("len = %d, want 1 (headerless file)", len(res.Transactions))
	}
}

func TestRead_SkipsBadRowsAndKeepsGoing(t *testing.T) {
	res := read(t, strings.Join([]string{
		"2024-03-01,expense,10,Groceries,ok",
		"not-a-date,expense,10,Groceries,bad date",
		"2024-03-02,transfer,10,Groceries,bad type",
		"2024-03-03,expense,abc,Groceries,bad amount",
		"2024-03-04,expense,20,Groceries,ok again",
	}, "\n"))

	if len(res.Transactions) != 2 {
		t.Fatalf("len = %d, want 2: %v", len(res.Transactions), res.Errors)
	}
	if res.Skipped != 3 {
		t.Errorf("Skipped = %d, want 3", res.Skipped)
	}
	if len(res.Errors) != 3 {
		t.Errorf("len(Errors) = %d, want 3", len(res.Errors))
	}
}

func TestRead_UnknownCategoryIsUncategorized(t *testing.T) {
	res := read(t, "2024-03-01,expense,10,Nonexistent,whatever")

	if len(res.Transactions) != 1 {
		t.Fatalf("len = %d, want 1 (unknown category is not an error)", len(res.Transactions))
	}
	if res.Transactions[0].CategoryID != "" {
		t.Errorf("CategoryID = %q, want uncategorized", res.Transactions[0].CategoryID)
	}
}

func TestRead_NegativeAmountNormalized(t *testing.T) {
	res := read(t, "2024-03-01,expense,-25.00,Groceries,signed export")

	if len(res.Transactions) != 1 {
		t.Fatalf("len = %d, want 1: %v", len(res.Transactions), res.Errors)
	}
	if res.Transactions[0].Amount != 25 {
		t.Errorf("Amount = %v, want 25", res.Transactions[0].Amount)
	}
}
