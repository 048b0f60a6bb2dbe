// Package model defines the core finance domain types: transactions,
// budgets, categories, and the derived view/insight records.
package model

import "time"

// TxType says which direction money moved. The Amount field is always
// unsigned; sign is carried here.
type TxType string

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TxType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Frequency is the recurrence step of a recurring transaction template.
type Frequency string

const (
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
)

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FreqDaily, FreqWeekly, FreqMonthly, FreqYearly:
		return true
	}
	return false
}

// Recurrence is the recurring-template descriptor carried inline on a
// Transaction. Weekday is required for weekly templates and ignored
// otherwise. A nil EndDate means the template is open-ended and must be
// expanded against a caller-supplied horizon.
type Recurrence struct {
	Frequency Frequency
	Weekday   *time.Weekday
	EndDate   *time.Time
}

// Transaction is a single dated income or expense entry. Unconfirmed
// transactions (pending imports, draft entries) are excluded from all
// budget aggregation. A non-nil Recurrence makes the transaction a
// template whose dated occurrences are produced by the recur package.
type Transaction struct {
	ID         string
	Type       TxType
	Amount     float64 // always >= 0, direction is Type
	CategoryID string  // empty = uncategorized
	Note       string
	Date       time.Time // calendar date, midnight UTC
	Confirmed  bool
	Recurrence *Recurrence

	// LastGenerated is the date of the most recent occurrence already
	// materialized from this template. Expansion resumes strictly after
	// it so repeated passes never duplicate dates.
	LastGenerated *time.Time
}

// IsTemplate reports whether the transaction carries a recurrence
// descriptor.
func (t Transaction) IsTemplate() bool {
	return t.Recurrence != nil
}
