// Package cashbook implements a standalone single-entry ledger over a flat
// delimited file: dated income/expense rows and a running net balance. It
// shares no state with the double-entry journal.
package cashbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a cashbook row.
type EntryType string

const (
	EntryTypeIncome  EntryType = "Income"
	EntryTypeExpense EntryType = "Expense"
)

// ParseEntryType parses a user-supplied entry type, case-insensitively.
func ParseEntryType(s string) (EntryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return EntryTypeIncome, nil
	case "expense":
		return EntryTypeExpense, nil
	}
	return "", fmt.Errorf("unknown entry type %q", s)
}

// Entry is one row in the cashbook file.
type Entry struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // always non-negative; Type carries the sign
	Type        EntryType
}
