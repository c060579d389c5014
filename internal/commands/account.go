package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/registry"
)

func newAccountCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the chart of accounts",
	}

	cmd.AddCommand(newAccountAddCommand(dir))
	cmd.AddCommand(newAccountListCommand(dir))

	return cmd
}

func newAccountAddCommand(dir *string) *cobra.Command {
	var typeStr string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountType, err := model.ParseAccountType(typeStr)
			if err != nil {
				return err
			}

			store, _, err := openStore(*dir)
			if err != nil {
				return err
			}
			defer store.Close()

			account, err := registry.NewService(store).Create(cmd.Context(), args[0], accountType)
			if err != nil {
				return err
			}

			fmt.Printf("Created account %q (%s)\n", account.Name, account.Type)
			return nil
		},
	}

	cmd.Flags().StringVar(&typeStr, "type", "", "account type: asset, liability, equity, revenue, expense (required)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newAccountListCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(*dir)
			if err != nil {
				return err
			}
			defer store.Close()

			accounts, err := registry.NewService(store).List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE")
			for _, a := range accounts {
				fmt.Fprintf(w, "%s\t%s\n", a.Name, a.Type)
			}
			return w.Flush()
		},
	}
}
