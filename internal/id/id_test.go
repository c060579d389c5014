package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTransactionID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		txID := NewTransactionID()
		assert.NotEmpty(t, txID)
		assert.False(t, seen[txID], "duplicate transaction ID %s", txID)
		seen[txID] = true
	}
}
