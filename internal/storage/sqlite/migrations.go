package sqlite

import "database/sql"

// migrations contains the SQL statements that set up the database schema.
// Statements must be idempotent; they run on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE COLLATE NOCASE,
		type TEXT NOT NULL CHECK (type IN ('asset', 'liability', 'equity', 'revenue', 'expense'))
	)`,
	`CREATE TABLE IF NOT EXISTS journal_lines (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		transaction_id TEXT NOT NULL,
		date           TEXT NOT NULL,
		description    TEXT NOT NULL,
		account_id     INTEGER NOT NULL REFERENCES accounts (id),
		debit          TEXT NOT NULL DEFAULT '0',
		credit         TEXT NOT NULL DEFAULT '0'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_lines_account ON journal_lines (account_id)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_lines_transaction ON journal_lines (transaction_id)`,
}

func runMigrations(db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
