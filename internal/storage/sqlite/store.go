// Package sqlite provides a SQLite-backed implementation of storage.Store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // pure Go SQLite driver, no CGO

	"github.com/ledgerbook-dev/ledgerbook/internal/errs"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/storage"
)

// Ensure Store implements storage.Store.
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store on a local SQLite file.
type Store struct {
	db *sql.DB
}

// Open creates parent directories, opens the database at dbPath, and runs
// migrations.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateAccount inserts a new account row. The name is stored as given; the
// caller (the registry) is responsible for normalization.
func (s *Store) CreateAccount(ctx context.Context, name string, accountType model.AccountType) (model.Account, error) {
	var existing int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM accounts WHERE name = ? COLLATE NOCASE", name,
	).Scan(&existing)
	switch {
	case err == nil:
		return model.Account{}, &errs.AccountExistsError{Name: name}
	case !errors.Is(err, sql.ErrNoRows):
		return model.Account{}, &errs.PersistenceError{Op: "checking account name", Err: err}
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO accounts (name, type) VALUES (?, ?)", name, string(accountType),
	)
	if err != nil {
		return model.Account{}, &errs.PersistenceError{Op: "inserting account", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Account{}, &errs.PersistenceError{Op: "reading inserted account id", Err: err}
	}

	return model.Account{ID: id, Name: name, Type: accountType}, nil
}

// Accounts returns all accounts ordered by name.
func (s *Store) Accounts(ctx context.Context) ([]model.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, type FROM accounts ORDER BY name",
	)
	if err != nil {
		return nil, &errs.PersistenceError{Op: "querying accounts", Err: err}
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Type); err != nil {
			return nil, &errs.PersistenceError{Op: "scanning account", Err: err}
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, &errs.PersistenceError{Op: "iterating accounts", Err: err}
	}
	return accounts, nil
}

// AccountByName looks up an account by name, case-insensitively.
func (s *Store) AccountByName(ctx context.Context, name string) (model.Account, error) {
	var a model.Account
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, type FROM accounts WHERE name = ? COLLATE NOCASE", name,
	).Scan(&a.ID, &a.Name, &a.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, errs.ErrNotFound
	}
	if err != nil {
		return model.Account{}, &errs.PersistenceError{Op: "querying account by name", Err: err}
	}
	return a, nil
}

// AccountByID looks up an account by ID.
func (s *Store) AccountByID(ctx context.Context, id int64) (model.Account, error) {
	var a model.Account
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, type FROM accounts WHERE id = ?", id,
	).Scan(&a.ID, &a.Name, &a.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, errs.ErrNotFound
	}
	if err != nil {
		return model.Account{}, &errs.PersistenceError{Op: "querying account by id", Err: err}
	}
	return a, nil
}

// AppendTransaction inserts all lines inside one database transaction.
func (s *Store) AppendTransaction(ctx context.Context, lines []model.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &errs.PersistenceError{Op: "beginning transaction", Err: err}
	}
	defer tx.Rollback()

	for _, line := range lines {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO journal_lines (transaction_id, date, description, account_id, debit, credit)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			line.TransactionID,
			line.Date.Format(model.DateFormat),
			line.Description,
			line.AccountID,
			line.Debit.String(),
			line.Credit.String(),
		)
		if err != nil {
			return &errs.PersistenceError{Op: "inserting journal line", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &errs.PersistenceError{Op: "committing transaction", Err: err}
	}
	return nil
}

const lineColumns = "id, transaction_id, date, description, account_id, debit, credit"

// LinesByAccount returns one account's lines in replay order.
func (s *Store) LinesByAccount(ctx context.Context, accountID int64) ([]model.JournalLine, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+lineColumns+" FROM journal_lines WHERE account_id = ? ORDER BY date, id",
		accountID,
	)
	if err != nil {
		return nil, &errs.PersistenceError{Op: "querying journal lines", Err: err}
	}
	defer rows.Close()
	return collectLines(rows)
}

// LinesByType returns the lines of every account of the given class.
func (s *Store) LinesByType(ctx context.Context, accountType model.AccountType) ([]model.JournalLine, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT j.id, j.transaction_id, j.date, j.description, j.account_id, j.debit, j.credit
		 FROM journal_lines j JOIN accounts a ON a.id = j.account_id
		 WHERE a.type = ? ORDER BY j.date, j.id`,
		string(accountType),
	)
	if err != nil {
		return nil, &errs.PersistenceError{Op: "querying journal lines by type", Err: err}
	}
	defer rows.Close()
	return collectLines(rows)
}

func collectLines(rows *sql.Rows) ([]model.JournalLine, error) {
	var lines []model.JournalLine
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, &errs.PersistenceError{Op: "iterating journal lines", Err: err}
	}
	return lines, nil
}

func scanLine(rows *sql.Rows) (model.JournalLine, error) {
	var (
		line          model.JournalLine
		dateStr       string
		debit, credit string
	)
	if err := rows.Scan(&line.ID, &line.TransactionID, &dateStr, &line.Description, &line.AccountID, &debit, &credit); err != nil {
		return model.JournalLine{}, &errs.PersistenceError{Op: "scanning journal line", Err: err}
	}

	var err error
	if line.Date, err = parseDate(dateStr); err != nil {
		return model.JournalLine{}, &errs.PersistenceError{Op: "parsing stored date", Err: err}
	}
	if line.Debit, err = decimal.NewFromString(debit); err != nil {
		return model.JournalLine{}, &errs.PersistenceError{Op: "parsing stored debit", Err: err}
	}
	if line.Credit, err = decimal.NewFromString(credit); err != nil {
		return model.JournalLine{}, &errs.PersistenceError{Op: "parsing stored credit", Err: err}
	}
	return line, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(model.DateFormat, s)
}
