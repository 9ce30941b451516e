// Package export reads and writes activity statements as CSV, for taking a
// slice of the dashboard feed out of the app.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aurorabank/lumen/internal/model"
)

const (
	numFields   = 8
	colID       = 0
	colDate     = 1
	colTitle    = 2
	colDesc     = 3
	colAmount   = 4
	colCurrency = 5
	colCategory = 6
	colAccount  = 7
)

var header = []string{"entry_id", "timestamp", "title", "description", "amount", "currency", "category", "account_id"}

// WriteStatement writes activity entries as a CSV statement.
func WriteStatement(w io.Writer, entries []model.ActivityItem) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, entry := range entries {
		if err := cw.Write(MarshalEntry(entry)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadStatement reads a CSV statement back into activity entries.
func ReadStatement(r io.Reader) ([]model.ActivityItem, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.ActivityItem
	for i, rec := range records[1:] {
		entry, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// MarshalEntry converts an ActivityItem to a CSV row.
func MarshalEntry(entry model.ActivityItem) []string {
	row := make([]string, numFields)
	row[colID] = entry.ID
	row[colDate] = entry.Timestamp.UTC().Format(time.RFC3339)
	row[colTitle] = entry.Title
	row[colDesc] = entry.Description
	row[colAmount] = entry.Amount.StringFixed(2)
	row[colCurrency] = string(entry.Currency)
	row[colCategory] = string(entry.Category)
	row[colAccount] = entry.AccountID
	return row
}

// UnmarshalEntry converts a CSV row to an ActivityItem.
func UnmarshalEntry(record []string) (model.ActivityItem, error) {
	if len(record) != numFields {
		return model.ActivityItem{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	timestamp, err := time.Parse(time.RFC3339, record[colDate])
	if err != nil {
		return model.ActivityItem{}, fmt.Errorf("parsing timestamp %q: %w", record[colDate], err)
	}
	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.ActivityItem{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.ActivityItem{
		ID:          record[colID],
		Title:       record[colTitle],
		Description: record[colDesc],
		Amount:      amount,
		Currency:    model.Currency(record[colCurrency]),
		Timestamp:   timestamp,
		Category:    model.ActivityCategory(record[colCategory]),
		AccountID:   record[colAccount],
	}, nil
}
