package cashbook

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadEntries(t *testing.T) {
	entries := []Entry{
		entry("2024-01-01", "Paycheck", "1000", EntryTypeIncome),
		entry("2024-01-02", "Groceries, weekly", "60.50", EntryTypeExpense),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries))

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Groceries, weekly", got[1].Description)
	assert.Equal(t, "60.50", got[1].Amount.StringFixed(2))
}

func TestReadEntries_HeaderOnly(t *testing.T) {
	got, err := ReadEntries(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
	}{
		{"bad date", []string{"01/02/2024", "Paycheck", "1000.00", "Income"}},
		{"bad amount", []string{"2024-01-01", "Paycheck", "lots", "Income"}},
		{"bad type", []string{"2024-01-01", "Paycheck", "1000.00", "Transfer"}},
		{"wrong field count", []string{"2024-01-01", "Paycheck"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalEntry(tt.record)
			assert.Error(t, err)
		})
	}
}
