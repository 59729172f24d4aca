package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gosemlint/internal/configloader"
	"github.com/yaklabco/gosemlint/internal/logging"
	"github.com/yaklabco/gosemlint/pkg/config"
	"github.com/yaklabco/gosemlint/pkg/lint"
	_ "github.com/yaklabco/gosemlint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/gosemlint/pkg/parser/nethtml"
	"github.com/yaklabco/gosemlint/pkg/reporter"
	"github.com/yaklabco/gosemlint/pkg/runner"
)

// ErrLintIssuesFound is returned when error-severity findings are present.
var ErrLintIssuesFound = errors.New("lint issues found")

// ErrInputFailure is returned when an input could not be read or decoded.
var ErrInputFailure = errors.New("input error")

// stdinPath is the argument that selects stdin as the input source.
const stdinPath = "-"

// stdinLabel is the logical path reported for stdin input.
const stdinLabel = "<stdin>"

type lintFlags struct {
	format     string
	ignore     []string
	enable     []string
	disable    []string
	strict     bool
	compact    bool
	noSniff    bool
	ruleFormat string
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Audit HTML files for semantic structure issues",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Audit HTML files for semantic structure and accessibility issues.

By default, audits all .html and .htm files in the current directory
and subdirectories. Specify paths to audit specific files or directories.
Pass "-" to read a single document from stdin.

Examples:
  gosemlint lint                 # Audit current directory
  gosemlint lint site/           # Audit site directory
  gosemlint lint index.html      # Audit single file
  gosemlint lint -               # Audit stdin
  gosemlint lint --format json   # Output as JSON for CI
  gosemlint lint --strict        # Treat warnings as errors`

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	cfg.Format = config.OutputFormat(flags.format)
	cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.Strict = flags.strict

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFormat, finalCfg.Format,
		logging.FieldStrict, finalCfg.Strict,
		logging.FieldJobs, finalCfg.Jobs,
	)

	parser := nethtml.New()
	registry := lint.DefaultRegistry
	engine := lint.NewEngine(parser, registry)
	lintRunner := runner.New(engine)

	var result *runner.Result

	if isStdinRun(args) {
		result, err = runStdin(ctx, lintRunner, finalCfg)
	} else {
		runOpts := runner.Options{
			Paths:               args,
			WorkingDir:          workDir,
			Extensions:          runner.DefaultExtensions(),
			ExcludeGlobs:        finalCfg.Ignore,
			DetectExtensionless: !flags.noSniff,
			Jobs:                finalCfg.Jobs,
			Config:              finalCfg,
		}

		logger.Debug("starting audit run",
			logging.FieldPaths, runOpts.Paths,
			logging.FieldWorkingDir, runOpts.WorkingDir,
			logging.FieldJobs, runOpts.Jobs,
		)

		result, err = lintRunner.Run(ctx, runOpts)
	}
	if err != nil {
		return errors.Join(errors.New("audit run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: format == reporter.FormatText,
		GroupByFile: true,
		Compact:     flags.compact,
		RuleFormat:  finalCfg.RuleFormat,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, finalCfg.Strict) {
	case ExitInputError:
		return ErrInputFailure
	case ExitLintErrors:
		return ErrLintIssuesFound
	default:
		return nil
	}
}

// isStdinRun reports whether the invocation reads a document from stdin.
func isStdinRun(args []string) bool {
	return len(args) == 1 && args[0] == stdinPath
}

// runStdin reads one document from stdin and audits it.
func runStdin(ctx context.Context, lintRunner *runner.Runner, cfg *config.Config) (*runner.Result, error) {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	ctx = logging.WithDocument(ctx, stdinLabel)
	logging.FromContext(ctx).Debug("auditing stdin document")

	return lintRunner.RunContent(ctx, stdinLabel, content, cfg)
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.noSniff, "no-sniff", false, "skip content detection for extensionless files")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
}
