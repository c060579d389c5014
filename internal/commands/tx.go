package commands

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/journal"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/registry"
)

func newTxCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record journal transactions",
	}

	cmd.AddCommand(newTxAddCommand(dir))

	return cmd
}

func newTxAddCommand(dir *string) *cobra.Command {
	var dateStr string
	var description string
	var debits, credits []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Validate and save a balanced transaction",
		Long: `Validate and save a balanced transaction.

Each --debit and --credit flag carries one line as ACCOUNT=AMOUNT, e.g.

  ledgerbook tx add --desc "Cash sale" --debit Cash=100 --credit Sales=100

Debits must equal credits within 0.01 or the transaction is rejected. Missing
accounts are never created here; add them with "account add" first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(model.DateFormat, dateStr)
			if err != nil {
				return fmt.Errorf("parsing date %q (want YYYY-MM-DD): %w", dateStr, err)
			}

			var lines []journal.LineInput
			for _, raw := range debits {
				account, amount, err := splitLineFlag(raw)
				if err != nil {
					return err
				}
				lines = append(lines, journal.LineInput{Account: account, Debit: amount})
			}
			for _, raw := range credits {
				account, amount, err := splitLineFlag(raw)
				if err != nil {
					return err
				}
				lines = append(lines, journal.LineInput{Account: account, Credit: amount})
			}

			store, _, err := openStore(*dir)
			if err != nil {
				return err
			}
			defer store.Close()

			validator := journal.NewValidator(registry.NewService(store))
			tx, err := validator.Validate(cmd.Context(), date, description, lines)
			if err != nil {
				return err
			}

			if err := journal.NewService(store).Append(cmd.Context(), tx); err != nil {
				return err
			}

			debit, credit := tx.Totals()
			slog.Debug("transaction saved", "id", tx.ID, "lines", len(tx.Lines))
			fmt.Printf("Saved transaction %s: %d lines, %s debit / %s credit\n",
				tx.ID, len(tx.Lines), debit.StringFixed(2), credit.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format(model.DateFormat), "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "desc", "", "transaction description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringArrayVar(&debits, "debit", nil, "debit line as ACCOUNT=AMOUNT (repeatable)")
	cmd.Flags().StringArrayVar(&credits, "credit", nil, "credit line as ACCOUNT=AMOUNT (repeatable)")

	return cmd
}

func splitLineFlag(raw string) (account, amount string, err error) {
	parts := strings.SplitN(raw, "=", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid line %q, want ACCOUNT=AMOUNT", raw)
	}
	return parts[0], parts[1], nil
}
