package main

import (
	"context"
	"fmt"
	"os"

	"github.com/foliotools/folio/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// .env values become defaults for the FOLIO_* variables the flags read
	config.LoadDotEnv()

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "run":
		runRun(ctx, os.Args[2:])
	case "resize":
		runResize(ctx, os.Args[2:])
	case "install":
		runInstall(ctx, os.Args[2:])
	case "profiles":
		runProfiles(ctx, os.Args[2:])
	case "verify":
		runVerify(ctx, os.Args[2:])
	case "watch":
		runWatch(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`folio - Portfolio image preparation tool

Usage:
  folio <command> [options]

Commands:
  run       Install dependencies, then resize the portfolio images
  resize    Resize portfolio images into preview and slider variants
  install   Install Python dependencies from a requirements file
  profiles  List available resize profiles
  verify    Check backed-up originals against their checksum manifest
  watch     Watch the portfolio directory and resize images as they change

Use "folio <command> --help" for more information about a command.`)
}
