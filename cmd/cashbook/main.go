package main

import (
	"os"

	"github.com/ledgerbook-dev/ledgerbook/internal/commands"
)

func main() {
	if err := commands.NewCashbookRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
