package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar date layout used everywhere a date crosses a
// boundary (CLI input, storage, rendering).
const DateFormat = "2006-01-02"

// JournalLine is one side of a double-entry posting. Lines are immutable and
// append-only; ID is assigned by the store on insert and fixes the original
// insertion order.
type JournalLine struct {
	ID            int64
	TransactionID string // grouping key shared by all lines of one transaction
	Date          time.Time
	Description   string
	AccountID     int64
	Debit         decimal.Decimal // non-negative, zero if credit side
	Credit        decimal.Decimal // non-negative, zero if debit side
}

// Transaction is an admission record produced by the validator: a set of
// resolved lines that balance, ready for an atomic append.
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Lines       []JournalLine
}

// Totals returns the summed debit and credit sides across all lines.
func (t Transaction) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, line := range t.Lines {
		debit = debit.Add(line.Debit)
		credit = credit.Add(line.Credit)
	}
	return debit, credit
}
