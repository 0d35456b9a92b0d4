package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/foliotools/folio/internal/domain-adapters/gateways"
	"github.com/foliotools/folio/internal/domain/entities"
	"github.com/foliotools/folio/internal/domain/interfaces"
	"github.com/foliotools/folio/internal/external-adapters/watch"
)

func runWatch(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	opts := &resizeOptions{}
	opts.register(fs)
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: folio watch [options]

Watch the portfolio directory and resize images as they are added or
changed. Stop with Ctrl-C.

Examples:
  folio watch
  folio watch --portfolio-dir static/img/portfolio --profiles preview

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	logger := &interfaces.StderrLogger{Verbose: *verbose}
	orch := opts.newResizeOrchestrator(logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := watch.NewWatcher(logger, isPortfolioImage(opts.portfolioDir), func(path string) {
		img := entities.SourceImage{Path: path, Name: filepath.Base(path)}
		if _, err := orch.ProcessOne(ctx, img); err != nil {
			logger.Error("failed to process image", interfaces.F("path", path), interfaces.F("error", err))
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !opts.quiet {
		fmt.Printf("Watching %s for new images (Ctrl-C to stop)...\n", opts.portfolioDir)
	}

	if err := watcher.Watch(ctx, opts.portfolioDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isPortfolioImage filters watch events down to image files that sit
// directly in the portfolio directory, not in the output subdirectories.
func isPortfolioImage(portfolioDir string) func(string) bool {
	return func(path string) bool {
		if !gateways.IsImageFile(path) {
			return false
		}
		return filepath.Dir(path) == filepath.Clean(portfolioDir)
	}
}
