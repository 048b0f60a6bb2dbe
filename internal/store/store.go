// Package store provides the SQLite-backed transaction ledger.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/pocket/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Ledger is the SQLite-backed store for transactions, budgets, and
// categories. All reads return full in-memory snapshots; the analytics
// engine only ever sees plain slices.
type Ledger struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string, log zerolog.Logger) (*Ledger, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	l := &Ledger{db: db, log: log}
	if err := l.seedCategories(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seeding categories: %w", err)
	}

	log.Debug().Str("path", dbPath).Msg("ledger opened")
	return l, nil
}

// Close closes the ledger database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// defaultCategories are created once on first open so a fresh ledger is
// immediately usable.
var defaultCategories = []model.Category{
	{Name: "Groceries", Type: model.TypeExpense},
	{Name: "Transport", Type: model.TypeExpense},
	{Name: "Dining", Type: model.TypeExpense},
	{Name: "Entertainment", Type: model.TypeExpense},
	{Name: "Utilities", Type: model.TypeExpense},
	{Name: "Salary", Type: model.TypeIncome},
}

func (l *Ledger) seedCategories() error {
	var count int
	if err := l.db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, c := range defaultCategories {
		c.ID = uuid.NewString()
		if err := l.SaveCategory(c); err != nil {
			return err
		}
	}
	l.log.Debug().Int("count", len(defaultCategories)).Msg("seeded default categories")
	return nil
}

// SaveCategory inserts or replaces a category.
func (l *Ledger) SaveCategory(c model.Category) error {
	_, err := l.db.Exec(`INSERT OR REPLACE INTO categories (id, name, type) VALUES (?, ?, ?)`,
		c.ID, c.Name, string(c.Type))
	return err
}

// Categories returns all categories ordered by name.
func (l *Ledger) Categories() ([]model.Category, error) {
	rows, err := l.db.Query("SELECT id, name, type FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var cats []model.Category
	for rows.Next() {
		var c model.Category
		var typ string
		if err := rows.Scan(&c.ID, &c.Name, &typ); err != nil {
			return nil, err
		}
		c.Type = model.TxType(typ)
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// SaveTransaction validates and inserts or replaces a transaction.
func (l *Ledger) SaveTransaction(tx model.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	return insertTransaction(l.db, tx)
}

// SaveTransactions inserts a batch inside one database transaction.
func (l *Ledger) SaveTransactions(txs []model.Transaction) error {
	dbtx, err := l.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = dbtx.Rollback() }()

	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return err
		}
		if err := insertTransaction(dbtx, tx); err != nil {
			return err
		}
	}
	return dbtx.Commit()
}

func insertTransaction(e execer, tx model.Transaction) error {
	var freq sql.NullString
	var weekday sql.NullInt64
	var endDate, lastGen sql.NullString
	if r := tx.Recurrence; r != nil {
		freq = sql.NullString{String: string(r.Frequency), Valid: true}
		if r.Weekday != nil {
			weekday = sql.NullInt64{Int64: int64(*r.Weekday), Valid: true}
		}
		if r.EndDate != nil {
			endDate = sql.NullString{String: r.EndDate.Format(model.DateFormat), Valid: true}
		}
	}
	if tx.LastGenerated != nil {
		lastGen = sql.NullString{String: tx.LastGenerated.Format(model.DateFormat), Valid: true}
	}

	confirmed := 0
	if tx.Confirmed {
		confirmed = 1
	}

	_, err := e.Exec(`INSERT OR REPLACE INTO transactions
		(id, type, amount, category_id, note, date, confirmed,
		 recur_frequency, recur_weekday, recur_end_date, recur_last_gen)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, string(tx.Type), tx.Amount, nullEmpty(tx.CategoryID), tx.Note,
		tx.Date.Format(model.DateFormat), confirmed,
		freq, weekday, endDate, lastGen,
	)
	return err
}

// Transactions returns all transactions ordered by date then id.
func (l *Ledger) Transactions() ([]model.Transaction, error) {
	rows, err := l.db.Query(`SELECT
		id, type, amount, category_id, note, date, confirmed,
		recur_frequency, recur_weekday, recur_end_date, recur_last_gen
		FROM transactions ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// Templates returns the transactions that carry a recurrence
// descriptor.
func (l *Ledger) Templates() ([]model.Transaction, error) {
	txs, err := l.Transactions()
	if err != nil {
		return nil, err
	}
	var templates []model.Transaction
	for _, tx := range txs {
		if tx.IsTemplate() {
			templates = append(templates, tx)
		}
	}
	return templates, nil
}

func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var tx model.Transaction
	var typ, dateStr string
	var categoryID, note, freq, endDate, lastGen sql.NullString
	var weekday sql.NullInt64
	var confirmed int

	err := rows.Scan(&tx.ID, &typ, &tx.Amount, &categoryID, &note, &dateStr, &confirmed,
		&freq, &weekday, &endDate, &lastGen)
	if err != nil {
		return tx, err
	}

	tx.Type = model.TxType(typ)
	tx.Confirmed = confirmed != 0
	if categoryID.Valid {
		tx.CategoryID = categoryID.String
	}
	if note.Valid {
		tx.Note = note.String
	}
	if tx.Date, err = model.ParseDate(dateStr); err != nil {
		return tx, fmt.Errorf("transaction %s: bad date %q: %w", tx.ID, dateStr, err)
	}

	if freq.Valid {
		rec := &model.Recurrence{Frequency: model.Frequency(freq.String)}
		if weekday.Valid {
			wd := time.Weekday(weekday.Int64)
			rec.Weekday = &wd
		}
		if endDate.Valid {
			d, err := model.ParseDate(endDate.String)
			if err != nil {
				return tx, fmt.Errorf("transaction %s: bad recurrence end date: %w", tx.ID, err)
			}
			rec.EndDate = &d
		}
		tx.Recurrence = rec
	}
	if lastGen.Valid {
		d, err := model.ParseDate(lastGen.String)
		if err != nil {
			return tx, fmt.Errorf("transaction %s: bad last-generated date: %w", tx.ID, err)
		}
		tx.LastGenerated = &d
	}

	return tx, nil
}

// ConfirmTransaction marks a transaction as confirmed.
func (l *Ledger) ConfirmTransaction(id string) error {
	res, err := l.db.Exec("UPDATE transactions SET confirmed = 1 WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("transaction %s not found", id)
	}
	return nil
}

// SetLastGenerated records the latest materialized occurrence date for
// a template so future expansion passes resume strictly after it.
func (l *Ledger) SetLastGenerated(templateID string, date time.Time) error {
	_, err := l.db.Exec("UPDATE transactions SET recur_last_gen = ? WHERE id = ?",
		date.Format(model.DateFormat), templateID)
	return err
}

// DeleteTransaction removes a transaction.
func (l *Ledger) DeleteTransaction(id string) error {
	_, err := l.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	return err
}

// SaveBudget validates and inserts or replaces a budget.
func (l *Ledger) SaveBudget(b model.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	_, err := l.db.Exec(`INSERT OR REPLACE INTO budgets
		(id, name, category_id, goal_amount, start_date, end_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Name, nullEmpty(b.CategoryID), b.GoalAmount,
		b.StartDate.Format(model.DateFormat), b.EndDate.Format(model.DateFormat),
	)
	return err
}

// Budgets returns all budgets in creation order (rowid), which is the
// stable iteration order the insight pass depends on.
func (l *Ledger) Budgets() ([]model.Budget, error) {
	rows, err := l.db.Query(`SELECT id, name, category_id, goal_amount, start_date, end_date
		FROM budgets ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		var categoryID sql.NullString
		var startStr, endStr string
		if err := rows.Scan(&b.ID, &b.Name, &categoryID, &b.GoalAmount, &startStr, &endStr); err != nil {
			return nil, err
		}
		if categoryID.Valid {
			b.CategoryID = categoryID.String
		}
		if b.StartDate, err = model.ParseDate(startStr); err != nil {
			return nil, fmt.Errorf("budget %s: bad start date: %w", b.ID, err)
		}
		if b.EndDate, err = model.ParseDate(endStr); err != nil {
			return nil, fmt.Errorf("budget %s: bad end date: %w", b.ID, err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// DeleteBudget removes a budget.
func (l *Ledger) DeleteBudget(id string) error {
	_, err := l.db.Exec("DELETE FROM budgets WHERE id = ?", id)
	return err
}

// Snapshot loads everything the engine needs in one call.
func (l *Ledger) Snapshot() ([]model.Transaction, []model.Budget, []model.Category, error) {
	txs, err := l.Transactions()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading transactions: %w", err)
	}
	budgets, err := l.Budgets()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading budgets: %w", err)
	}
	cats, err := l.Categories()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading categories: %w", err)
	}
	return txs, budgets, cats, nil
}

func nullEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
