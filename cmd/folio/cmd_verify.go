package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliotools/folio/internal/config"
	"github.com/foliotools/folio/internal/domain-adapters/gateways"
)

func runVerify(_ context.Context, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	portfolioDir := fs.String("portfolio-dir", config.PortfolioDir(), "Path to the portfolio images directory")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: folio verify [options]

Recompute the SHA-256 checksums of the files under backup_original/ and
compare them against the manifest written when the backups were taken.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	keeper := gateways.NewBackupKeeper()
	problems, total, err := keeper.VerifyBackups(*portfolioDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(problems) == 0 {
		fmt.Printf("✓ All %d backups verified\n", total)
		return
	}

	fmt.Printf("✗ %d of %d backups failed verification:\n", len(problems), total)
	for _, p := range problems {
		fmt.Printf("  ✗ %s\n", p.Error())
	}
	os.Exit(1)
}
