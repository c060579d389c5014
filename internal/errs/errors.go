// Package errs defines the error taxonomy returned by the core. Every failure
// surfaces as a value the presentation layer can match on and turn into a
// specific message; nothing panics across package boundaries.
package errs

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for cross-layer signaling.
var (
	// ErrNotFound indicates a lookup by name or ID matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrEmptyDescription rejects a transaction with a blank description.
	ErrEmptyDescription = errors.New("description required")
	// ErrNoLines rejects a transaction with no usable lines after unused rows
	// are discarded.
	ErrNoLines = errors.New("no journal lines")
)

// AccountExistsError reports a create that collides with an existing account
// after name normalization.
type AccountExistsError struct {
	Name string
}

func (e *AccountExistsError) Error() string {
	return fmt.Sprintf("account %q already exists", e.Name)
}

// UnknownAccountError reports a reference to an account the registry cannot
// resolve.
type UnknownAccountError struct {
	Name string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("unknown account %q", e.Name)
}

// InvalidAmountError reports a debit or credit that is not a non-negative
// decimal.
type InvalidAmountError struct {
	Value string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q", e.Value)
}

// UnbalancedError reports a transaction whose debits and credits differ by
// more than the admission tolerance. Both totals are carried so the caller
// can show the difference.
type UnbalancedError struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("unbalanced transaction: debits (%s) != credits (%s)",
		e.Debits.StringFixed(2), e.Credits.StringFixed(2))
}

// Diff returns debits minus credits.
func (e *UnbalancedError) Diff() decimal.Decimal {
	return e.Debits.Sub(e.Credits)
}

// PersistenceError wraps a storage-layer fault. The failed operation has no
// partial effect; Op names what was being attempted.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
