package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliotools/folio/internal/config"
	"github.com/foliotools/folio/internal/external-adapters/yaml"
)

func runProfiles(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("profiles", flag.ExitOnError)
	profilesDir := fs.String("profiles-dir", config.ProfilesDir(), "Directory with YAML resize profiles")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: folio profiles [options]

List all available resize profiles. The built-in preview and slider profiles
are always present; YAML files in the profiles directory add to or override
them by name.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  folio profiles
  folio profiles --profiles-dir resize-profiles
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	repo := yaml.NewProfileRepository(*profilesDir)
	profiles, err := repo.ListProfiles(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing profiles: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Available profiles (%d total):\n\n", len(profiles))
	for _, p := range profiles {
		fmt.Printf("  %-12s %s, %s mode", p.Name, p.SizeLabel(), p.Mode)
		if p.Description != "" {
			fmt.Printf(" - %s", p.Description)
		}
		fmt.Println()
		fmt.Printf("  %-12s output: %s/, suffix: %s, jpeg quality: %d\n", "", p.OutputDir, p.Suffix, p.JPEGQuality())
		fmt.Println()
	}
}
