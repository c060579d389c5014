package registry

import "github.com/ledgerbook-dev/ledgerbook/internal/model"

// ChartEntry seeds one starter account.
type ChartEntry struct {
	Name string
	Type model.AccountType
}

// DefaultChart returns the starter chart of accounts seeded by init.
func DefaultChart() []ChartEntry {
	return []ChartEntry{
		{Name: "Cash", Type: model.AccountTypeAsset},
		{Name: "Bank Account", Type: model.AccountTypeAsset},
		{Name: "Accounts Receivable", Type: model.AccountTypeAsset},
		{Name: "Credit Card", Type: model.AccountTypeLiability},
		{Name: "Accounts Payable", Type: model.AccountTypeLiability},
		{Name: "Owner's Equity", Type: model.AccountTypeEquity},
		{Name: "Sales Revenue", Type: model.AccountTypeRevenue},
		{Name: "Rent", Type: model.AccountTypeExpense},
		{Name: "Supplies", Type: model.AccountTypeExpense},
		{Name: "Utilities", Type: model.AccountTypeExpense},
	}
}
