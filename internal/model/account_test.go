package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		in      string
		want    AccountType
		wantErr bool
	}{
		{"asset", AccountTypeAsset, false},
		{"Asset", AccountTypeAsset, false},
		{"  REVENUE  ", AccountTypeRevenue, false},
		{"liability", AccountTypeLiability, false},
		{"equity", AccountTypeEquity, false},
		{"expense", AccountTypeExpense, false},
		{"income", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAccountType(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseAccountType(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseAccountType(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestDebitNormal(t *testing.T) {
	assert.True(t, AccountTypeAsset.DebitNormal())
	assert.True(t, AccountTypeExpense.DebitNormal())
	assert.False(t, AccountTypeLiability.DebitNormal())
	assert.False(t, AccountTypeEquity.DebitNormal())
	assert.False(t, AccountTypeRevenue.DebitNormal())
}

func TestAccountTypesClosedSet(t *testing.T) {
	types := AccountTypes()
	assert.Len(t, types, 5)
	for _, typ := range types {
		parsed, err := ParseAccountType(string(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
}
