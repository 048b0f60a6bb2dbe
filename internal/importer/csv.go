// Package importer reads transaction exports into ledger records.
// Imported rows arrive unconfirmed; they only enter budget aggregation
// once the user confirms them.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/pocket/internal/model"
)

// Result summarizes one import pass. Rows that fail to parse are
// skipped and counted rather than aborting the whole file.
type Result struct {
	Transactions []model.Transaction
	Skipped      int
	Errors       []error
}

// CSV column layout: date, type, amount, category, note. A header row
// is detected by a non-date first field and skipped.
const expectedColumns = 5

// ReadFile imports transactions from a CSV export at path. Categories
// are matched by case-insensitive name against cats; unmatched names
// are left uncategorized (degraded data, not an error).
func ReadFile(path string, cats []model.Category, log zerolog.Logger) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening import file %s: %w", path, err)
	}
	defer f.Close()

	res := Read(f, cats, log)
	log.Debug().
		Str("file", path).
		Int("imported", len(res.Transactions)).
		Int("skipped", res.Skipped).
		Msg("import finished")
	return res, nil
}

// Read imports transactions from r.
func Read(r io.Reader, cats []model.Category, log zerolog.Logger) Result {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validated per row below

	byName := make(map[string]model.Category, len(cats))
	for _, c := range cats {
		byName[strings.ToLower(c.Name)] = c
	}

	var res Result
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}

		// Header row: first field does not parse as a date.
		if line == 1 {
			if _, err := model.ParseDate(strings.TrimSpace(record[0])); err != nil {
				continue
			}
		}

		tx, err := parseRow(record, byName)
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			log.Debug().Int("line", line).Err(err).Msg("skipping row")
			continue
		}
		res.Transactions = append(res.Transactions, tx)
	}

	return res
}

func parseRow(record []string, byName map[string]model.Category) (model.Transaction, error) {
	if len(record) < expectedColumns {
		return model.Transaction{}, fmt.Errorf("expected %d columns, got %d", expectedColumns, len(record))
	}

	date, err := model.ParseDate(strings.TrimSpace(record[0]))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad date %q: %w", record[0], err)
	}

	typ := model.TxType(strings.ToLower(strings.TrimSpace(record[1])))
	if !typ.Valid() {
		return model.Transaction{}, fmt.Errorf("bad type %q: %w", record[1], model.ErrInvalidType)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad amount %q: %w", record[2], err)
	}
	if amount < 0 {
		// Exports that sign amounts instead of typing them: a negative
		// amount on an expense row is the same expense.
		amount = -amount
	}

	var categoryID string
	if name := strings.TrimSpace(record[3]); name != "" {
		if c, ok := byName[strings.ToLower(name)]; ok {
			categoryID = c.ID
		}
	}

	tx := model.Transaction{
		ID:         uuid.NewString(),
		Type:       typ,
		Amount:     amount,
		CategoryID: categoryID,
		Note:       strings.TrimSpace(record[4]),
		Date:       date,
		Confirmed:  false, // imported rows await confirmation
	}
	if err := tx.Validate(); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}
