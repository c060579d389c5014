package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/storage/memory"
)

type fixture struct {
	store *memory.Store
	ids   map[string]int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{store: memory.New(), ids: make(map[string]int64)}

	accounts := []struct {
		name string
		typ  model.AccountType
	}{
		{"Cash", model.AccountTypeAsset},
		{"Equipment", model.AccountTypeAsset},
		{"Loan", model.AccountTypeLiability},
		{"Owner Capital", model.AccountTypeEquity},
		{"Sales", model.AccountTypeRevenue},
		{"Consulting", model.AccountTypeRevenue},
		{"Rent", model.AccountTypeExpense},
	}
	for _, a := range accounts {
		created, err := f.store.CreateAccount(context.Background(), a.name, a.typ)
		require.NoError(t, err)
		f.ids[a.name] = created.ID
	}
	return f
}

// post appends one balanced two-line transaction: debit one account, credit
// another.
func (f *fixture) post(t *testing.T, debitAccount, creditAccount, amount string) {
	t.Helper()
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	amt := decimal.RequireFromString(amount)
	err := f.store.AppendTransaction(context.Background(), []model.JournalLine{
		{TransactionID: "tx", Date: d, Description: "test", AccountID: f.ids[debitAccount], Debit: amt},
		{TransactionID: "tx", Date: d, Description: "test", AccountID: f.ids[creditAccount], Credit: amt},
	})
	require.NoError(t, err)
}

func TestIncomeStatement(t *testing.T) {
	f := newFixture(t)
	f.post(t, "Cash", "Sales", "100")

	stmt, err := NewGenerator(f.store).IncomeStatement(context.Background())
	require.NoError(t, err)

	require.Len(t, stmt.Revenue, 1)
	assert.Equal(t, "Sales", stmt.Revenue[0].Name)
	assert.Equal(t, "100.00", stmt.Revenue[0].Balance.StringFixed(2))

	// No expense account has lines: the section is empty but the total is
	// still zero, not missing.
	assert.Empty(t, stmt.Expenses)
	assert.Equal(t, "100.00", stmt.TotalRevenue.StringFixed(2))
	assert.Equal(t, "0.00", stmt.TotalExpenses.StringFixed(2))
	assert.Equal(t, "100.00", stmt.NetIncome.StringFixed(2))
}

func TestIncomeStatement_NetOfExpenses(t *testing.T) {
	f := newFixture(t)
	f.post(t, "Cash", "Sales", "100")
	f.post(t, "Rent", "Cash", "30")

	stmt, err := NewGenerator(f.store).IncomeStatement(context.Background())
	require.NoError(t, err)

	require.Len(t, stmt.Expenses, 1)
	assert.Equal(t, "30.00", stmt.Expenses[0].Balance.StringFixed(2))
	assert.Equal(t, "70.00", stmt.NetIncome.StringFixed(2))
	assert.True(t, stmt.NetIncome.Equal(stmt.TotalRevenue.Sub(stmt.TotalExpenses)))
}

func TestIncomeStatement_OmitsAccountsWithoutLines(t *testing.T) {
	f := newFixture(t)
	f.post(t, "Cash", "Sales", "100")

	stmt, err := NewGenerator(f.store).IncomeStatement(context.Background())
	require.NoError(t, err)

	// Consulting has no journal lines and must not appear.
	require.Len(t, stmt.Revenue, 1)
	assert.Equal(t, "Sales", stmt.Revenue[0].Name)
}

func TestBalanceSheet(t *testing.T) {
	f := newFixture(t)
	f.post(t, "Cash", "Owner Capital", "500") // owner funds the business
	f.post(t, "Equipment", "Loan", "200")     // financed purchase
	f.post(t, "Cash", "Sales", "100")         // revenue
	f.post(t, "Rent", "Cash", "30")           // expense

	sheet, err := NewGenerator(f.store).BalanceSheet(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "770.00", sheet.TotalAssets.StringFixed(2)) // 500+100-30 cash, 200 equipment
	assert.Equal(t, "200.00", sheet.TotalLiabilities.StringFixed(2))
	assert.Equal(t, "70.00", sheet.RetainedEarnings.StringFixed(2))
	assert.Equal(t, "570.00", sheet.TotalEquity.StringFixed(2)) // 500 explicit + 70 net income
	assert.True(t, sheet.Balanced)

	// Account lists are sorted by name.
	require.Len(t, sheet.Assets, 2)
	assert.Equal(t, "Cash", sheet.Assets[0].Name)
	assert.Equal(t, "Equipment", sheet.Assets[1].Name)
}

func TestBalanceSheet_EmptyJournal(t *testing.T) {
	f := newFixture(t)

	sheet, err := NewGenerator(f.store).BalanceSheet(context.Background())
	require.NoError(t, err)

	assert.Empty(t, sheet.Assets)
	assert.Equal(t, "0.00", sheet.TotalAssets.StringFixed(2))
	assert.Equal(t, "0.00", sheet.TotalEquity.StringFixed(2))
	assert.True(t, sheet.Balanced)
}

func TestBalanceSheet_BalancedWheneverTransactionsBalance(t *testing.T) {
	f := newFixture(t)
	amounts := []string{"10", "250.50", "3.33", "1000"}
	pairs := [][2]string{
		{"Cash", "Sales"},
		{"Cash", "Owner Capital"},
		{"Rent", "Cash"},
		{"Equipment", "Loan"},
	}
	for i, p := range pairs {
		f.post(t, p[0], p[1], amounts[i])
	}

	sheet, err := NewGenerator(f.store).BalanceSheet(context.Background())
	require.NoError(t, err)
	assert.True(t, sheet.Balanced)

	rhs := sheet.TotalLiabilities.Add(sheet.TotalEquity)
	assert.True(t, sheet.TotalAssets.Equal(rhs),
		"assets %s != liabilities+equity %s", sheet.TotalAssets, rhs)
}
