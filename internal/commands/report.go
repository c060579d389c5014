package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/report"
)

func newReportCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate financial reports",
	}

	cmd.AddCommand(newReportIncomeCommand(dir))
	cmd.AddCommand(newReportBalanceCommand(dir))

	return cmd
}

func newReportIncomeCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "income",
		Short: "Generate the income statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(*dir)
			if err != nil {
				return err
			}
			defer store.Close()

			stmt, err := report.NewGenerator(store).IncomeStatement(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println("=== INCOME STATEMENT ===")
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			writeSection(w, "REVENUE", stmt.Revenue)
			writeTotal(w, "TOTAL REVENUE", stmt.TotalRevenue.StringFixed(2))
			writeSection(w, "EXPENSES", stmt.Expenses)
			writeTotal(w, "TOTAL EXPENSES", stmt.TotalExpenses.StringFixed(2))
			writeTotal(w, "NET INCOME", stmt.NetIncome.StringFixed(2))
			return w.Flush()
		},
	}
}

func newReportBalanceCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Generate the balance sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(*dir)
			if err != nil {
				return err
			}
			defer store.Close()

			sheet, err := report.NewGenerator(store).BalanceSheet(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println("=== BALANCE SHEET ===")
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			writeSection(w, "ASSETS", sheet.Assets)
			writeTotal(w, "TOTAL ASSETS", sheet.TotalAssets.StringFixed(2))
			writeSection(w, "LIABILITIES", sheet.Liabilities)
			writeTotal(w, "TOTAL LIABILITIES", sheet.TotalLiabilities.StringFixed(2))
			writeSection(w, "EQUITY", sheet.Equity)
			fmt.Fprintf(w, "  Retained Earnings\t%s\n", sheet.RetainedEarnings.StringFixed(2))
			writeTotal(w, "TOTAL EQUITY", sheet.TotalEquity.StringFixed(2))
			if err := w.Flush(); err != nil {
				return err
			}

			if sheet.Balanced {
				fmt.Println("STATUS: BALANCED")
			} else {
				fmt.Println("STATUS: UNBALANCED")
				slog.Warn("balance sheet does not balance; admitted transactions should always balance, investigate the journal",
					"assets", sheet.TotalAssets.StringFixed(2),
					"liabilities_and_equity", sheet.TotalLiabilities.Add(sheet.TotalEquity).StringFixed(2))
			}
			return nil
		},
	}
}

func writeSection(w io.Writer, title string, balances []report.AccountBalance) {
	fmt.Fprintf(w, "%s\t\n", title)
	for _, b := range balances {
		fmt.Fprintf(w, "  %s\t%s\n", b.Name, b.Balance.StringFixed(2))
	}
}

func writeTotal(w io.Writer, label, amount string) {
	fmt.Fprintf(w, "%s\t%s\n", label, amount)
}
