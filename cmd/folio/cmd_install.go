package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/foliotools/folio/internal/config"
	"github.com/foliotools/folio/internal/domain-adapters/gateways"
)

func runInstall(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("install", flag.ExitOnError)
	var (
		requirements   = fs.String("requirements", config.Requirements(), "Path to the requirements file")
		pip            = fs.String("pip", config.Pip(), "Installer executable")
		timeoutMinutes = fs.Int("timeout", 10, "Installation timeout in minutes")
		quiet          = fs.Bool("quiet", false, "Quiet mode - minimal output")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: folio install [options]

Install the Python dependencies the image pipeline needs, equivalent to
running "pip install -r requirements_resize.txt" by hand. The installer's
exit code becomes this command's exit code.

Examples:
  folio install
  folio install --requirements requirements_resize.txt --pip pip3

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	result := installDependencies(ctx, *pip, *requirements, time.Duration(*timeoutMinutes)*time.Minute, *quiet)
	if !result.Success {
		fmt.Fprintf(os.Stderr, "Error: dependency installation failed (exit %d): %v\n", result.ExitCode, result.Error)
		if result.ExitCode > 0 {
			os.Exit(result.ExitCode)
		}
		os.Exit(1)
	}

	if !*quiet {
		fmt.Printf("Dependencies installed in %.1fs\n", result.Duration.Seconds())
	}
}

// installDependencies runs the installer with output streamed to the console
func installDependencies(ctx context.Context, pip, requirements string, timeout time.Duration, quiet bool) *gateways.ExecResult {
	if !quiet {
		fmt.Println("Installing dependencies...")
	}

	installer := gateways.NewInstaller()
	return installer.InstallRequirements(ctx, pip, requirements, gateways.ExecConfig{
		Timeout: timeout,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})
}
