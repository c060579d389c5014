// Package id generates transaction grouping keys.
package id

import "github.com/google/uuid"

// NewTransactionID returns a collision-free grouping key shared by all lines
// of one saved transaction. Random UUIDs are used instead of wall-clock keys
// so two transactions saved within the same second can never merge.
func NewTransactionID() string {
	return uuid.NewString()
}
