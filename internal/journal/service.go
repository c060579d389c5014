// Package journal implements transaction admission, persistence, and
// per-account ledger projection for the double-entry journal.
package journal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/errs"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/storage"
)

// Service persists admitted transactions and projects account ledgers.
type Service struct {
	store storage.Store
}

// NewService creates a journal Service.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Append persists all lines of an admitted transaction as one atomic batch.
// On failure no line is committed.
func (s *Service) Append(ctx context.Context, tx model.Transaction) error {
	if err := s.store.AppendTransaction(ctx, tx.Lines); err != nil {
		return fmt.Errorf("appending transaction %s: %w", tx.ID, err)
	}
	return nil
}

// LedgerRow is one row of the per-account ledger view: a journal line
// annotated with the cumulative debit-credit total through that row.
type LedgerRow struct {
	Date        time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
}

// ProjectLedger replays an account's lines ordered by (date, insertion
// order) and accumulates a raw debit-credit running balance for every
// account class. The projection is recomputed from the full line history on
// every call; nothing is cached.
func (s *Service) ProjectLedger(ctx context.Context, accountID int64) ([]LedgerRow, error) {
	account, err := s.store.AccountByID(ctx, accountID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, &errs.UnknownAccountError{Name: strconv.FormatInt(accountID, 10)}
	}
	if err != nil {
		return nil, err
	}

	lines, err := s.store.LinesByAccount(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("loading ledger for %s: %w", account.Name, err)
	}

	rows := make([]LedgerRow, 0, len(lines))
	balance := decimal.Zero
	for _, line := range lines {
		balance = balance.Add(line.Debit).Sub(line.Credit)
		rows = append(rows, LedgerRow{
			Date:        line.Date,
			Description: line.Description,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Balance:     balance,
		})
	}
	return rows, nil
}
