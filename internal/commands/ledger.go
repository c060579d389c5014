package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/journal"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/registry"
)

func newLedgerCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "ledger <account>",
		Short: "Show an account's ledger with its running balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(*dir)
			if err != nil {
				return err
			}
			defer store.Close()

			account, err := registry.NewService(store).Resolve(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("account %q: %w", args[0], err)
			}

			rows, err := journal.NewService(store).ProjectLedger(cmd.Context(), account.ID)
			if err != nil {
				return err
			}

			fmt.Printf("Ledger for %s (%s)\n", account.Name, account.Type)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDESCRIPTION\tDEBIT\tCREDIT\tBALANCE")
			for _, row := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					row.Date.Format(model.DateFormat),
					row.Description,
					row.Debit.StringFixed(2),
					row.Credit.StringFixed(2),
					row.Balance.StringFixed(2),
				)
			}
			return w.Flush()
		},
	}
}
