// Package report produces the income statement and balance sheet by summing
// signed balances per account class over the full journal.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/storage"
)

// tolerance bounds the accounting-equation check on the balance sheet.
var tolerance = decimal.RequireFromString("0.01")

// AccountBalance pairs an account with its signed aggregate balance.
type AccountBalance struct {
	AccountID int64
	Name      string
	Balance   decimal.Decimal
}

// IncomeStatement reports revenue and expense balances and their difference.
type IncomeStatement struct {
	Revenue       []AccountBalance
	Expenses      []AccountBalance
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// BalanceSheet reports asset, liability, and equity balances plus a
// diagnostic for the accounting equation. RetainedEarnings is a synthetic
// equity line equal to net income; TotalEquity includes it.
type BalanceSheet struct {
	Assets           []AccountBalance
	Liabilities      []AccountBalance
	Equity           []AccountBalance
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	RetainedEarnings decimal.Decimal
	TotalEquity      decimal.Decimal
	Balanced         bool
}

// Generator builds reports from the full journal contents. Reports are
// derived views: every call rescans the store.
type Generator struct {
	store storage.Store
}

// NewGenerator creates a report Generator.
func NewGenerator(store storage.Store) *Generator {
	return &Generator{store: store}
}

// IncomeStatement sums revenue (credit-debit) and expense (debit-credit)
// account balances. Net income is total revenue minus total expenses, even
// when one side has no accounts at all.
func (g *Generator) IncomeStatement(ctx context.Context) (IncomeStatement, error) {
	revenue, totalRevenue, err := g.classBalances(ctx, model.AccountTypeRevenue)
	if err != nil {
		return IncomeStatement{}, err
	}
	expenses, totalExpenses, err := g.classBalances(ctx, model.AccountTypeExpense)
	if err != nil {
		return IncomeStatement{}, err
	}

	return IncomeStatement{
		Revenue:       revenue,
		Expenses:      expenses,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetIncome:     totalRevenue.Sub(totalExpenses),
	}, nil
}

// BalanceSheet sums asset, liability, and equity balances, appends retained
// earnings (net income, recomputed rather than reused as state), and checks
// assets against liabilities plus equity. An unbalanced result is reported
// as a status, never corrected: admission-time validation already guaranteed
// per-transaction balance, so a system-wide imbalance indicates a bug.
func (g *Generator) BalanceSheet(ctx context.Context) (BalanceSheet, error) {
	income, err := g.IncomeStatement(ctx)
	if err != nil {
		return BalanceSheet{}, err
	}

	assets, totalAssets, err := g.classBalances(ctx, model.AccountTypeAsset)
	if err != nil {
		return BalanceSheet{}, err
	}
	liabilities, totalLiabilities, err := g.classBalances(ctx, model.AccountTypeLiability)
	if err != nil {
		return BalanceSheet{}, err
	}
	equity, explicitEquity, err := g.classBalances(ctx, model.AccountTypeEquity)
	if err != nil {
		return BalanceSheet{}, err
	}

	totalEquity := explicitEquity.Add(income.NetIncome)
	diff := totalAssets.Sub(totalLiabilities.Add(totalEquity))

	return BalanceSheet{
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		RetainedEarnings: income.NetIncome,
		TotalEquity:      totalEquity,
		Balanced:         diff.Abs().LessThan(tolerance),
	}, nil
}

// classBalances sums each account's signed balance for one class, ordered by
// account name. Accounts with no journal lines are omitted (inner-join
// semantics).
func (g *Generator) classBalances(ctx context.Context, accountType model.AccountType) ([]AccountBalance, decimal.Decimal, error) {
	accounts, err := g.store.Accounts(ctx)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("loading accounts: %w", err)
	}
	lines, err := g.store.LinesByType(ctx, accountType)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("loading %s lines: %w", accountType, err)
	}

	debits := make(map[int64]decimal.Decimal)
	credits := make(map[int64]decimal.Decimal)
	for _, line := range lines {
		debits[line.AccountID] = debits[line.AccountID].Add(line.Debit)
		credits[line.AccountID] = credits[line.AccountID].Add(line.Credit)
	}

	var balances []AccountBalance
	total := decimal.Zero
	for _, a := range accounts {
		if a.Type != accountType {
			continue
		}
		debit, seenDebit := debits[a.ID]
		credit, seenCredit := credits[a.ID]
		if !seenDebit && !seenCredit {
			continue
		}

		balance := debit.Sub(credit)
		if !accountType.DebitNormal() {
			balance = credit.Sub(debit)
		}

		balances = append(balances, AccountBalance{AccountID: a.ID, Name: a.Name, Balance: balance})
		total = total.Add(balance)
	}
	return balances, total, nil
}
