package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/config"
	"github.com/ledgerbook-dev/ledgerbook/internal/registry"
	"github.com/ledgerbook-dev/ledgerbook/internal/storage/sqlite"
)

func newInitCommand(dir *string) *cobra.Command {
	var bare bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new books directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(*dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, bare)
		},
	}

	cmd.Flags().BoolVar(&bare, "bare", false, "skip seeding the starter chart of accounts")

	return cmd
}

func runInit(dir string, bare bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating books directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	cfg := config.Default()
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Opening the database runs migrations.
	store, err := sqlite.Open(filepath.Join(dir, cfg.Data.Database))
	if err != nil {
		return fmt.Errorf("creating journal database: %w", err)
	}
	defer store.Close()

	if !bare {
		ctx := context.Background()
		reg := registry.NewService(store)
		chart := registry.DefaultChart()
		for _, entry := range chart {
			if _, err := reg.Create(ctx, entry.Name, entry.Type); err != nil {
				return fmt.Errorf("seeding account %q: %w", entry.Name, err)
			}
		}
		slog.Info("seeded starter chart of accounts", "accounts", len(chart))
	}

	fmt.Printf("Initialized books at %s\n", dir)
	return nil
}
