// Package storage provides abstractions for persistent ledger data.
package storage

import (
	"context"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// Store is the persistence collaborator behind the account registry and the
// journal. Implementations must keep a transaction's line batch atomic: either
// every line of an append is visible on the next read, or none are.
type Store interface {
	// CreateAccount inserts a new account and returns it with its assigned ID.
	// Returns *errs.AccountExistsError if the name collides with an existing
	// account.
	CreateAccount(ctx context.Context, name string, accountType model.AccountType) (model.Account, error)

	// Accounts returns all accounts ordered by name ascending.
	Accounts(ctx context.Context) ([]model.Account, error)

	// AccountByName looks up an account by its exact stored name
	// (case-insensitively). Returns errs.ErrNotFound if absent.
	AccountByName(ctx context.Context, name string) (model.Account, error)

	// AccountByID looks up an account by ID. Returns errs.ErrNotFound if absent.
	AccountByID(ctx context.Context, id int64) (model.Account, error)

	// AppendTransaction inserts all lines as one atomic batch.
	AppendTransaction(ctx context.Context, lines []model.JournalLine) error

	// LinesByAccount returns one account's lines ordered by
	// (date ascending, insertion order ascending).
	LinesByAccount(ctx context.Context, accountID int64) ([]model.JournalLine, error)

	// LinesByType returns the lines of every account of the given class, in
	// the same order as LinesByAccount.
	LinesByType(ctx context.Context, accountType model.AccountType) ([]model.JournalLine, error)

	// Close releases any resources held by the store.
	Close() error
}
