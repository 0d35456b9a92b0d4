package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/foliotools/folio/internal/config"
	"github.com/foliotools/folio/internal/domain-adapters/gateways"
	"github.com/foliotools/folio/internal/domain/interfaces"
)

func runRun(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	opts := &resizeOptions{}
	opts.register(fs)
	var (
		requirements   = fs.String("requirements", config.Requirements(), "Path to the requirements file")
		pip            = fs.String("pip", config.Pip(), "Installer executable")
		timeoutMinutes = fs.Int("timeout", 10, "Timeout per step in minutes")
		skipInstall    = fs.Bool("skip-install", false, "Skip the dependency installation step")
		keepGoing      = fs.Bool("keep-going", false, "Continue to the next step even when one fails")
		noPause        = fs.Bool("no-pause", false, "Do not wait for Enter before exiting")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: folio run [options]

Run the full preparation sequence: install the Python dependencies, then
resize the portfolio images, then wait for acknowledgment.

A failing step stops the sequence and sets a nonzero exit code naming the
step; pass --keep-going to proceed regardless and always finish with "Done!".

Examples:
  folio run
  folio run --portfolio-dir static/img/portfolio --no-pause
  folio run --skip-install --keep-going

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	printBanner(opts.portfolioDir)

	timeout := time.Duration(*timeoutMinutes) * time.Minute
	exitCode := 0
	failedStep := ""

	// Step 1: install dependencies
	if !*skipInstall {
		result := installDependencies(ctx, *pip, *requirements, timeout, opts.quiet)
		if !result.Success {
			fmt.Fprintf(os.Stderr, "Error: dependency installation failed (exit %d): %v\n", result.ExitCode, result.Error)
			failedStep = "install"
			exitCode = result.ExitCode
			if exitCode <= 0 {
				exitCode = 1
			}
		}
	}

	// Step 2: resize images
	if failedStep == "" || *keepGoing {
		fmt.Println("Running image resizer...")

		stepCtx, cancel := context.WithTimeout(ctx, timeout)
		report, err := opts.newResizeOrchestrator(&interfaces.StderrLogger{}).Process(stepCtx)
		cancel()

		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error: image resizing failed: %v\n", err)
			if failedStep == "" {
				failedStep = "resize"
				exitCode = 1
			}
		case report.Successful == 0 && report.Failed > 0:
			fmt.Fprintf(os.Stderr, "Error: no image could be resized (%d failures)\n", report.Failed)
			if failedStep == "" {
				failedStep = "resize"
				exitCode = 1
			}
		default:
			if !opts.quiet {
				printResizeSummary(report)
			}
		}
	}

	if failedStep == "" || *keepGoing {
		fmt.Println("Done!")
	} else {
		fmt.Fprintf(os.Stderr, "Aborted: the %s step failed.\n", failedStep)
	}

	// Step 3: wait for acknowledgment - the only stdin read
	if !*noPause {
		gateways.NewPrompter(os.Stdin, os.Stdout).WaitForUser()
	}

	// --keep-going reproduces the original wrapper contract: the process
	// exits successfully no matter what the inner steps did.
	if failedStep != "" && !*keepGoing {
		os.Exit(exitCode)
	}
}

func printBanner(portfolioDir string) {
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Portfolio Image Preparation")
	fmt.Printf("Target directory: %s\n", portfolioDir)
	fmt.Println(strings.Repeat("=", 50))
}
