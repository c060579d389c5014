package cashbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// Service owns one flat-file cashbook.
type Service struct {
	path string
}

// NewService creates a Service over the cashbook file at path. The file is
// created on first append.
func NewService(path string) *Service {
	return &Service{path: path}
}

// Path returns the cashbook file location.
func (s *Service) Path() string {
	return s.path
}

// Append validates and appends one entry to the cashbook file, creating the
// file with its header when missing.
func (s *Service) Append(entry Entry) error {
	if entry.Amount.IsNegative() {
		return fmt.Errorf("amount must be non-negative, got %s", entry.Amount)
	}
	if entry.Type != EntryTypeIncome && entry.Type != EntryTypeExpense {
		return fmt.Errorf("unknown entry type %q", entry.Type)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating cashbook dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening cashbook: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendEntries(f, []Entry{entry}); err != nil {
		return fmt.Errorf("appending entry: %w", err)
	}
	return nil
}

// Entries reads all rows. A missing file is an empty cashbook.
func (s *Service) Entries() ([]Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening cashbook %s: %w", s.path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading cashbook %s: %w", s.path, err)
	}
	return entries, nil
}

// Balance returns sum(Income) - sum(Expense) over all entries.
func (s *Service) Balance() (decimal.Decimal, error) {
	entries, err := s.Entries()
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, entry := range entries {
		switch entry.Type {
		case EntryTypeIncome:
			balance = balance.Add(entry.Amount)
		case EntryTypeExpense:
			balance = balance.Sub(entry.Amount)
		}
	}
	return balance, nil
}

// Clear truncates the cashbook back to a header-only file. The caller is
// responsible for confirming with the user first.
func (s *Service) Clear() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating cashbook dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(Header+"\n"), 0o644); err != nil {
		return fmt.Errorf("clearing cashbook: %w", err)
	}
	return nil
}
