package cashbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Header is the CSV header of a cashbook file.
const Header = "Date,Description,Amount,Type"

const (
	numFields  = 4
	dateFormat = "2006-01-02"
	colDate    = 0
	colDesc    = 1
	colAmount  = 2
	colType    = 3
)

// ReadEntries reads all entries from a cashbook CSV reader.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading cashbook CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []Entry
	for i, rec := range records[1:] {
		entry, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// WriteEntries writes a full cashbook file, header included.
func WriteEntries(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, entry := range entries {
		if err := cw.Write(MarshalEntry(entry)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendEntries appends entries to an existing cashbook writer (no header).
func AppendEntries(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, entry := range entries {
		if err := cw.Write(MarshalEntry(entry)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(entry Entry) []string {
	row := make([]string, numFields)
	row[colDate] = entry.Date.Format(dateFormat)
	row[colDesc] = entry.Description
	row[colAmount] = entry.Amount.StringFixed(2)
	row[colType] = string(entry.Type)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	entryType, err := ParseEntryType(record[colType])
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Date:        date,
		Description: record[colDesc],
		Amount:      amount,
		Type:        entryType,
	}, nil
}
