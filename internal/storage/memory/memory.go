// Package memory provides an in-memory storage.Store used for tests and
// development. It keeps code paths easy to follow while the SQLite store
// serves real data.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ledgerbook-dev/ledgerbook/internal/errs"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store is an in-memory implementation of storage.Store, guarded by an
// RWMutex. Lines keep their append order; replay order is a stable sort by
// date over that.
type Store struct {
	mu       sync.RWMutex
	accounts map[int64]model.Account
	byName   map[string]int64 // lowercased name -> id
	lines    []model.JournalLine
	nextAcct int64
	nextLine int64
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		accounts: make(map[int64]model.Account),
		byName:   make(map[string]int64),
		nextAcct: 1,
		nextLine: 1,
	}
}

// CreateAccount inserts a new account.
func (s *Store) CreateAccount(_ context.Context, name string, accountType model.AccountType) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := s.byName[key]; ok {
		return model.Account{}, &errs.AccountExistsError{Name: name}
	}

	a := model.Account{ID: s.nextAcct, Name: name, Type: accountType}
	s.nextAcct++
	s.accounts[a.ID] = a
	s.byName[key] = a.ID
	return a, nil
}

// Accounts returns all accounts ordered by name.
func (s *Store) Accounts(_ context.Context) ([]model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// AccountByName looks up an account case-insensitively.
func (s *Store) AccountByName(_ context.Context, name string) (model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[strings.ToLower(name)]
	if !ok {
		return model.Account{}, errs.ErrNotFound
	}
	return s.accounts[id], nil
}

// AccountByID looks up an account by ID.
func (s *Store) AccountByID(_ context.Context, id int64) (model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return model.Account{}, errs.ErrNotFound
	}
	return a, nil
}

// AppendTransaction appends all lines, assigning insertion-order IDs.
func (s *Store) AppendTransaction(_ context.Context, lines []model.JournalLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range lines {
		line.ID = s.nextLine
		s.nextLine++
		s.lines = append(s.lines, line)
	}
	return nil
}

// LinesByAccount returns one account's lines in replay order.
func (s *Store) LinesByAccount(_ context.Context, accountID int64) ([]model.JournalLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.JournalLine
	for _, line := range s.lines {
		if line.AccountID == accountID {
			out = append(out, line)
		}
	}
	sortLines(out)
	return out, nil
}

// LinesByType returns the lines of every account of the given class.
func (s *Store) LinesByType(_ context.Context, accountType model.AccountType) ([]model.JournalLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.JournalLine
	for _, line := range s.lines {
		if a, ok := s.accounts[line.AccountID]; ok && a.Type == accountType {
			out = append(out, line)
		}
	}
	sortLines(out)
	return out, nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

// sortLines orders by (date, insertion order). The stable sort preserves
// append order for equal dates.
func sortLines(lines []model.JournalLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.Before(lines[j].Date)
	})
}
