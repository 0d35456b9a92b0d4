// Package main provides the folio CLI for preparing portfolio images.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/foliotools/folio/internal/config"
	"github.com/foliotools/folio/internal/domain-adapters/gateways"
	orchestrators "github.com/foliotools/folio/internal/domain-orchestrators"
	"github.com/foliotools/folio/internal/domain/entities"
	"github.com/foliotools/folio/internal/domain/interfaces"
	"github.com/foliotools/folio/internal/external-adapters/yaml"
)

// resizeOptions collects the flags shared by resize, run and watch
type resizeOptions struct {
	portfolioDir string
	profilesDir  string
	profiles     string
	noBackup     bool
	padding      bool
	quality      int
	dryRun       bool
	jsonOutput   string
	quiet        bool
}

func (o *resizeOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.portfolioDir, "portfolio-dir", config.PortfolioDir(), "Path to the portfolio images directory")
	fs.StringVar(&o.profilesDir, "profiles-dir", config.ProfilesDir(), "Directory with YAML resize profiles (built-ins otherwise)")
	fs.StringVar(&o.profiles, "profiles", "", "Comma-separated profile names to produce (default: all)")
	fs.BoolVar(&o.noBackup, "no-backup", false, "Skip creating backup of original images")
	fs.BoolVar(&o.padding, "padding", false, "Pad to the target size on a white canvas instead of cropping")
	fs.IntVar(&o.quality, "quality", 0, "Override JPEG quality (1-100)")
	fs.BoolVar(&o.dryRun, "dry-run", false, "List the variants that would be produced without writing anything")
	fs.StringVar(&o.jsonOutput, "json-output", "", "Optional JSON file for a detailed report")
	fs.BoolVar(&o.quiet, "quiet", false, "Quiet mode - minimal output")
}

func (o *resizeOptions) profileNames() []string {
	if o.profiles == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(o.profiles, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// newResizeOrchestrator wires the gateways following the architecture pattern
func (o *resizeOptions) newResizeOrchestrator(logger interfaces.Logger) *orchestrators.ResizeOrchestrator {
	profileRepo := yaml.NewProfileRepository(o.profilesDir)
	scanner := gateways.NewDirectoryScanner()
	backupper := gateways.NewBackupKeeper()
	resizer := gateways.NewImageResizer()

	return orchestrators.NewResizeOrchestrator(
		profileRepo,
		scanner,
		backupper,
		resizer,
		logger,
		orchestrators.ResizeOrchestratorConfig{
			PortfolioDir:    o.portfolioDir,
			ProfileNames:    o.profileNames(),
			Backup:          !o.noBackup,
			DryRun:          o.dryRun,
			ForcePad:        o.padding,
			QualityOverride: o.quality,
			OnVariant:       variantPrinter(o.quiet),
		},
	)
}

func runResize(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("resize", flag.ExitOnError)
	opts := &resizeOptions{}
	opts.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: folio resize [options]

Resize every image in the portfolio directory into one output per profile.
The built-in profiles match the portfolio site layout:

  preview  800x600px (4:3 ratio) for the portfolio grid
  slider   1200x800px (3:2 ratio) for project detail pages

Originals are copied to backup_original/ before the first processing run.

Examples:
  folio resize
  folio resize --portfolio-dir static/img/portfolio --quality 90
  folio resize --profiles slider --no-backup
  folio resize --padding --json-output resize-report.json

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if !opts.quiet {
		fmt.Println("Portfolio Image Resizer")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Printf("Processing images in: %s\n", opts.portfolioDir)
		fmt.Printf("Backup original images: %v\n", !opts.noBackup)
		fmt.Println()
	}

	logger := &interfaces.StderrLogger{}
	report, err := opts.newResizeOrchestrator(logger).Process(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.jsonOutput != "" {
		writeJSONReport(opts.jsonOutput, report)
	}

	if !opts.quiet {
		printResizeSummary(report)
	}

	// Exit with error only if nothing succeeded and something failed
	if report.Successful == 0 && report.Failed > 0 {
		os.Exit(1)
	}
}

func variantPrinter(quiet bool) func(entities.VariantResult) {
	if quiet {
		return nil
	}
	return func(res entities.VariantResult) {
		switch res.Status {
		case "success":
			fmt.Printf("✓ Resized %s [%s] -> %s\n", res.Image, res.Profile, res.OutputPath)
		case "skipped":
			fmt.Printf("- Would resize %s [%s] -> %s\n", res.Image, res.Profile, res.OutputPath)
		default:
			fmt.Printf("✗ Error processing %s [%s]: %s\n", res.Image, res.Profile, res.Message)
		}
	}
}

func printResizeSummary(report *entities.ResizeReport) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Resizing complete!")
	fmt.Printf("  Images found:      %d\n", report.TotalImages)
	if report.BackedUp > 0 {
		fmt.Printf("  Originals backed up: %d\n", report.BackedUp)
	}
	fmt.Printf("  Variants produced: %d\n", report.Successful)
	if report.Skipped > 0 {
		fmt.Printf("  Variants skipped:  %d\n", report.Skipped)
	}
	if report.Failed > 0 {
		fmt.Printf("  Failures:          %d\n", report.Failed)
		for _, f := range report.FailureDetails {
			fmt.Printf("    ✗ %s [%s] - %s\n", f.Image, f.Profile, f.Message)
		}
	}
	fmt.Printf("  Duration:          %.2f seconds\n", report.DurationSeconds)
}

func writeJSONReport(path string, report *entities.ResizeReport) {
	reportData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to marshal JSON report: %v\n", err)
		return
	}
	if err := os.WriteFile(path, reportData, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to write JSON report: %v\n", err)
	}
}
