// Package registry manages the chart of accounts: uniquely named accounts,
// each tagged with one of the five fixed classes.
package registry

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/storage"
)

// Normalize trims surrounding whitespace and title-cases an account name, so
// "  cash" and "CASH" both map to "Cash". All registry operations compare
// normalized names.
func Normalize(name string) string {
	// cases.Caser carries transform state, so build one per call.
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

// Service provides account creation and lookup over a Store.
type Service struct {
	store storage.Store
}

// NewService creates a registry Service.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Create normalizes the name and inserts a new account of the given type.
// Returns *errs.AccountExistsError when the normalized name collides with an
// existing account. The type is immutable once set; there is no update or
// delete operation.
func (s *Service) Create(ctx context.Context, name string, accountType model.AccountType) (model.Account, error) {
	normalized := Normalize(name)
	if normalized == "" {
		return model.Account{}, errors.New("account name required")
	}
	return s.store.CreateAccount(ctx, normalized, accountType)
}

// List returns all accounts ordered by name ascending.
func (s *Service) List(ctx context.Context) ([]model.Account, error) {
	return s.store.Accounts(ctx)
}

// Resolve looks up an account by normalized name. Returns errs.ErrNotFound
// if no account matches.
func (s *Service) Resolve(ctx context.Context, name string) (model.Account, error) {
	return s.store.AccountByName(ctx, Normalize(name))
}
