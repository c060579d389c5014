package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/buildinfo"
	"github.com/ledgerbook-dev/ledgerbook/internal/cashbook"
	"github.com/ledgerbook-dev/ledgerbook/internal/logging"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// NewCashbookRootCommand creates the root command of the standalone cashbook
// utility. It shares no state with the journal: only a flat CSV file.
func NewCashbookRootCommand() *cobra.Command {
	var file string
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "cashbook",
		Short:   "Single-entry income/expense ledger over a flat file",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&file, "file", "cashbook.csv", "cashbook file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newCashbookAddCommand(&file))
	rootCmd.AddCommand(newCashbookListCommand(&file))
	rootCmd.AddCommand(newCashbookBalanceCommand(&file))
	rootCmd.AddCommand(newCashbookClearCommand(&file))

	return rootCmd
}

func newCashbookAddCommand(file *string) *cobra.Command {
	var dateStr string
	var description string
	var amountStr string
	var typeStr string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an income or expense entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(model.DateFormat, dateStr)
			if err != nil {
				return fmt.Errorf("parsing date %q (want YYYY-MM-DD): %w", dateStr, err)
			}
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amountStr, err)
			}
			entryType, err := cashbook.ParseEntryType(typeStr)
			if err != nil {
				return err
			}

			entry := cashbook.Entry{
				Date:        date,
				Description: description,
				Amount:      amount,
				Type:        entryType,
			}
			if err := cashbook.NewService(*file).Append(entry); err != nil {
				return err
			}

			fmt.Printf("Added %s %s: %s\n", entry.Type, entry.Amount.StringFixed(2), entry.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format(model.DateFormat), "entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "desc", "", "entry description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringVar(&amountStr, "amount", "", "entry amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&typeStr, "type", "expense", "entry type: income or expense")

	return cmd
}

func newCashbookListCommand(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all entries with the running balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := cashbook.NewService(*file)
			entries, err := svc.Entries()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDESCRIPTION\tAMOUNT\tTYPE")
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					entry.Date.Format(model.DateFormat),
					entry.Description,
					entry.Amount.StringFixed(2),
					entry.Type,
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			balance, err := svc.Balance()
			if err != nil {
				return err
			}
			fmt.Printf("Balance: %s\n", balance.StringFixed(2))
			return nil
		},
	}
}

func newCashbookBalanceCommand(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the net balance (income minus expenses)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := cashbook.NewService(*file).Balance()
			if err != nil {
				return err
			}
			fmt.Printf("Balance: %s\n", balance.StringFixed(2))
			return nil
		},
	}
}

func newCashbookClearCommand(file *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all entries, keeping only the header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Printf("Clear all entries in %s? [y/N] ", *file)
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading confirmation: %w", err)
				}
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := cashbook.NewService(*file).Clear(); err != nil {
				return err
			}
			fmt.Println("Cashbook cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}
