package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/pocket/internal/logger"
	"github.com/theirongolddev/pocket/internal/model"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "ledger.db"), logger.NewWithWriter(testWriter{t}))
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })
	return l
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestLedger_SeedsDefaultCategories(t *testing.T) {
	l := openTestLedger(t)

	cats, err := l.Categories()
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) == 0 {
		t.Fatal("fresh ledger has no categories")
	}
}

func TestLedger_TransactionRoundTrip(t *testing.T) {
	l := openTestLedger(t)

	wd := time.Friday
	end := mustDate(t, "2024-12-31")
	tx := model.Transaction{
		ID:         "tx1",
		Type:       model.TypeExpense,
		Amount:     42.50,
		CategoryID: "cat1",
		Note:       "weekly shop",
		Date:       mustDate(t, "2024-03-01"),
		Confirmed:  true,
		Recurrence: &model.Recurrence{
			Frequency: model.FreqWeekly,
			Weekday:   &wd,
			EndDate:   &end,
		},
	}

	if err := l.SaveTransaction(tx); err != nil {
		t.Fatalf("save: %v", err)
	}

	txs, err := l.Transactions()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("len(txs) = %d, want 1", len(txs))
	}

	got := txs[0]
	if got.Amount != 42.50 || got.Note != "weekly shop" || !got.Confirmed {
		t.Errorf("fields lost in round trip: %+v", got)
	}
	if !got.Date.Equal(tx.Date) {
		t.Errorf("Date = %v, want %v", got.Date, tx.Date)
	}
	if got.Recurrence == nil {
		t.Fatal("recurrence lost in round trip")
	}
	if got.Recurrence.Frequency != model.FreqWeekly {
		t.Errorf("Frequency = %v, want weekly", got.Recurrence.Frequency)
	}
	if got.Recurrence.Weekday == nil || *got.Recurrence.Weekday != time.Friday {
		t.Errorf("Weekday = %v, want Friday", got.Recurrence.Weekday)
	}
	if got.Recurrence.EndDate == nil || !got.Recurrence.EndDate.Equal(end) {
		t.Errorf("EndDate = %v, want %v", got.Recurrence.EndDate, end)
	}
}

func TestLedger_SaveRejectsInvalid(t *testing.T) {
	l := openTestLedger(t)

	err := l.SaveTransaction(model.Transaction{
		ID: "bad", Type: model.TypeExpense, Amount: -1,
		Date: mustDate(t, "2024-03-01"),
	})
	if !errors.Is(err, model.ErrNegativeAmount) {
		t.Errorf("err = %v, want ErrNegativeAmount", err)
	}

	err = l.SaveBudget(model.Budget{
		ID: "bad", Name: "x", GoalAmount: 10,
		StartDate: mustDate(t, "2024-03-31"),
		EndDate:   mustDate(t, "2024-03-01"),
	})
	if !errors.Is(err, model.ErrInvalidPeriod) {
		t.Errorf("err = %v, want ErrInvalidPeriod", err)
	}
}

func TestLedger_BudgetsKeepCreationOrder(t *testing.T) {
	l := openTestLedger(t)

	for _, id := range []string{"z-budget", "a-budget", "m-budget"} {
		err := l.SaveBudget(model.Budget{
			ID: id, Name: id, GoalAmount: 100,
			StartDate: mustDate(t, "2024-01-01"),
			EndDate:   mustDate(t, "2024-01-31"),
		})
		if err != nil {
			t.Fatalf("save budget %s: %v", id, err)
		}
	}

	budgets, err := l.Budgets()
	if err != nil {
		t.Fatalf("budgets: %v", err)
	}
	want := []string{"z-budget", "a-budget", "m-budget"}
	if len(budgets) != len(want) {
		t.Fatalf("len(budgets) = %d, want %d", len(budgets), len(want))
	}
	for i, b := range budgets {
		if b.ID != want[i] {
			t.Errorf("budgets[%d] = %s, want %s (creation order)", i, b.ID, want[i])
		}
	}
}

func TestLedger_TemplatesAndLastGenerated(t *testing.T) {
	l := openTestLedger(t)

	plain := model.Transaction{
		ID: "plain", Type: model.TypeExpense, Amount: 5,
		Date: mustDate(t, "2024-03-01"), Confirmed: true,
	}
	tmpl := model.Transaction{
		ID: "tmpl", Type: model.TypeExpense, Amount: 9.99,
		Date:       mustDate(t, "2024-03-01"),
		Recurrence: &model.Recurrence{Frequency: model.FreqMonthly},
	}
	if err := l.SaveTransactions([]model.Transaction{plain, tmpl}); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	templates, err := l.Templates()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if len(templates) != 1 || templates[0].ID != "tmpl" {
		t.Fatalf("templates = %+v, want just tmpl", templates)
	}

	last := mustDate(t, "2024-05-01")
	if err := l.SetLastGenerated("tmpl", last); err != nil {
		t.Fatalf("set last generated: %v", err)
	}

	templates, err = l.Templates()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if templates[0].LastGenerated == nil || !templates[0].LastGenerated.Equal(last) {
		t.Errorf("LastGenerated = %v, want %v", templates[0].LastGenerated, last)
	}
}

func TestLedger_ConfirmTransaction(t *testing.T) {
	l := openTestLedger(t)

	tx := model.Transaction{
		ID: "pending", Type: model.TypeExpense, Amount: 12,
		Date: mustDate(t, "2024-03-01"), Confirmed: false,
	}
	if err := l.SaveTransaction(tx); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := l.ConfirmTransaction("pending"); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	txs, _ := l.Transactions()
	if !txs[0].Confirmed {
		t.Error("transaction still unconfirmed after ConfirmTransaction")
	}

	if err := l.ConfirmTransaction("nope"); err == nil {
		t.Error("confirming a missing transaction did not error")
	}
}
