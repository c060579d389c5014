package journal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/errs"
	"github.com/ledgerbook-dev/ledgerbook/internal/id"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// tolerance is the maximum absolute debit/credit difference admitted.
var tolerance = decimal.RequireFromString("0.01")

// Resolver resolves account names during admission; implemented by the
// registry. The validator never creates accounts.
type Resolver interface {
	Resolve(ctx context.Context, name string) (model.Account, error)
}

// LineInput is one raw entry row as collected by the presentation layer.
// Amounts are uninterpreted strings; blank means zero.
type LineInput struct {
	Account string
	Debit   string
	Credit  string
}

// Validator gates admission of transactions into the journal. It performs no
// writes; on success the caller persists the returned record via
// Service.Append.
type Validator struct {
	registry Resolver
}

// NewValidator creates a Validator over an account resolver.
func NewValidator(registry Resolver) *Validator {
	return &Validator{registry: registry}
}

// Validate checks a candidate transaction and returns an admission record
// carrying a fresh transaction ID and the resolved, filtered line list.
//
// Rows with a blank account name, or with both amounts parsing to exactly
// zero, are unused grid rows and are discarded rather than rejected. Failure
// modes, in order: errs.ErrEmptyDescription, *errs.UnknownAccountError,
// *errs.InvalidAmountError, errs.ErrNoLines, *errs.UnbalancedError.
func (v *Validator) Validate(ctx context.Context, date time.Time, description string, lines []LineInput) (model.Transaction, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return model.Transaction{}, errs.ErrEmptyDescription
	}

	var resolved []model.JournalLine
	totalDebit, totalCredit := decimal.Zero, decimal.Zero

	for _, in := range lines {
		name := strings.TrimSpace(in.Account)
		if name == "" {
			continue
		}

		debit, debitErr := parseAmount(in.Debit)
		credit, creditErr := parseAmount(in.Credit)
		if debitErr == nil && creditErr == nil && debit.IsZero() && credit.IsZero() {
			continue
		}

		account, err := v.registry.Resolve(ctx, name)
		if errors.Is(err, errs.ErrNotFound) {
			return model.Transaction{}, &errs.UnknownAccountError{Name: name}
		}
		if err != nil {
			return model.Transaction{}, err
		}

		if debitErr != nil {
			return model.Transaction{}, &errs.InvalidAmountError{Value: in.Debit}
		}
		if creditErr != nil {
			return model.Transaction{}, &errs.InvalidAmountError{Value: in.Credit}
		}

		resolved = append(resolved, model.JournalLine{
			AccountID: account.ID,
			Debit:     debit,
			Credit:    credit,
		})
		totalDebit = totalDebit.Add(debit)
		totalCredit = totalCredit.Add(credit)
	}

	if len(resolved) == 0 {
		return model.Transaction{}, errs.ErrNoLines
	}
	if totalDebit.Sub(totalCredit).Abs().GreaterThan(tolerance) {
		return model.Transaction{}, &errs.UnbalancedError{Debits: totalDebit, Credits: totalCredit}
	}

	tx := model.Transaction{
		ID:          id.NewTransactionID(),
		Date:        date,
		Description: description,
		Lines:       resolved,
	}
	for i := range tx.Lines {
		tx.Lines[i].TransactionID = tx.ID
		tx.Lines[i].Date = date
		tx.Lines[i].Description = description
	}
	return tx, nil
}

// parseAmount parses a non-negative decimal amount; blank is zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, errors.New("amount must be non-negative")
	}
	return d, nil
}
