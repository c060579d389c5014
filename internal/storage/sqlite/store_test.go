package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook-dev/ledgerbook/internal/errs"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "books", "ledgerbook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesParentDirs(t *testing.T) {
	store := openTemp(t)

	accounts, err := store.Accounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestCreateAndLookupAccount(t *testing.T) {
	ctx := context.Background()
	store := openTemp(t)

	cash, err := store.CreateAccount(ctx, "Cash", model.AccountTypeAsset)
	require.NoError(t, err)
	assert.NotZero(t, cash.ID)

	byName, err := store.AccountByName(ctx, "cash")
	require.NoError(t, err)
	assert.Equal(t, cash.ID, byName.ID)
	assert.Equal(t, model.AccountTypeAsset, byName.Type)

	byID, err := store.AccountByID(ctx, cash.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cash", byID.Name)

	_, err = store.AccountByName(ctx, "Nope")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = store.AccountByID(ctx, 9999)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCreateAccount_DuplicateName(t *testing.T) {
	ctx := context.Background()
	store := openTemp(t)

	_, err := store.CreateAccount(ctx, "Cash", model.AccountTypeAsset)
	require.NoError(t, err)

	_, err = store.CreateAccount(ctx, "CASH", model.AccountTypeAsset)
	var existsErr *errs.AccountExistsError
	require.ErrorAs(t, err, &existsErr)

	accounts, err := store.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestAccounts_SortedByName(t *testing.T) {
	ctx := context.Background()
	store := openTemp(t)

	for _, name := range []string{"Sales", "Cash", "Rent"} {
		_, err := store.CreateAccount(ctx, name, model.AccountTypeExpense)
		require.NoError(t, err)
	}

	accounts, err := store.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "Cash", accounts[0].Name)
	assert.Equal(t, "Rent", accounts[1].Name)
	assert.Equal(t, "Sales", accounts[2].Name)
}

func TestAppendTransactionAndQueryLines(t *testing.T) {
	ctx := context.Background()
	store := openTemp(t)

	cash, err := store.CreateAccount(ctx, "Cash", model.AccountTypeAsset)
	require.NoError(t, err)
	sales, err := store.CreateAccount(ctx, "Sales", model.AccountTypeRevenue)
	require.NoError(t, err)

	post := func(txID string, day int, desc string, debit, credit string) {
		d := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
		err := store.AppendTransaction(ctx, []model.JournalLine{
			{TransactionID: txID, Date: d, Description: desc, AccountID: cash.ID, Debit: decimal.RequireFromString(debit), Credit: decimal.RequireFromString(credit)},
			{TransactionID: txID, Date: d, Description: desc, AccountID: sales.ID, Debit: decimal.RequireFromString(credit), Credit: decimal.RequireFromString(debit)},
		})
		require.NoError(t, err)
	}
	// Out of date order to exercise the ORDER BY.
	post("tx-1", 20, "Later sale", "40.25", "0")
	post("tx-2", 5, "First sale", "100", "0")
	post("tx-3", 20, "Same-day sale", "7", "0")

	lines, err := store.LinesByAccount(ctx, cash.ID)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "First sale", lines[0].Description)
	assert.Equal(t, "Later sale", lines[1].Description)
	assert.Equal(t, "Same-day sale", lines[2].Description)
	assert.True(t, lines[1].Debit.Equal(decimal.RequireFromString("40.25")))
	assert.Equal(t, "tx-2", lines[0].TransactionID)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), lines[0].Date)

	revenueLines, err := store.LinesByType(ctx, model.AccountTypeRevenue)
	require.NoError(t, err)
	require.Len(t, revenueLines, 3)
	for _, line := range revenueLines {
		assert.Equal(t, sales.ID, line.AccountID)
	}

	assetLines, err := store.LinesByType(ctx, model.AccountTypeAsset)
	require.NoError(t, err)
	assert.Len(t, assetLines, 3)

	equityLines, err := store.LinesByType(ctx, model.AccountTypeEquity)
	require.NoError(t, err)
	assert.Empty(t, equityLines)
}

func TestAppendTransaction_Empty(t *testing.T) {
	store := openTemp(t)
	assert.NoError(t, store.AppendTransaction(context.Background(), nil))
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "ledgerbook.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.CreateAccount(ctx, "Cash", model.AccountTypeAsset)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	accounts, err := reopened.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}
