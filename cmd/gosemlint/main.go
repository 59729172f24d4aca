// Package main is the entry point for the gosemlint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gosemlint/internal/cli"
	"github.com/yaklabco/gosemlint/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/gosemlint/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, cli.ErrLintIssuesFound):
			// Signal for exit code only; the report already went to stdout.
			return cli.ExitLintErrors
		case errors.Is(err, cli.ErrInputFailure):
			return cli.ExitInputError
		default:
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
			return cli.ExitInputError
		}
	}

	return cli.ExitSuccess
}
