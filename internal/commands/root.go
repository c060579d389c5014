// Package commands wires the CLI surface: it collects user input, invokes
// the core services, and renders their structured results as tables.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/buildinfo"
	"github.com/ledgerbook-dev/ledgerbook/internal/config"
	"github.com/ledgerbook-dev/ledgerbook/internal/logging"
	"github.com/ledgerbook-dev/ledgerbook/internal/storage/sqlite"
)

// NewRootCommand creates the ledgerbook root command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var dir string
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "ledgerbook",
		Short:   "Double-entry bookkeeping for one set of local books",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "books directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCommand(&dir))
	rootCmd.AddCommand(newAccountCommand(&dir))
	rootCmd.AddCommand(newTxCommand(&dir))
	rootCmd.AddCommand(newLedgerCommand(&dir))
	rootCmd.AddCommand(newReportCommand(&dir))

	return rootCmd
}

// openStore loads the books config and opens the journal database.
func openStore(dir string) (*sqlite.Store, *config.Config, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s (did you run init?): %w", config.FileName, err)
	}

	store, err := sqlite.Open(filepath.Join(dir, cfg.Data.Database))
	if err != nil {
		return nil, nil, fmt.Errorf("opening journal database: %w", err)
	}
	return store, cfg, nil
}
