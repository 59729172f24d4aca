package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gosemlint/internal/logging"
	"github.com/yaklabco/gosemlint/pkg/lint"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gosemlint configuration file",
		Long: `Create a new .gosemlint.yml configuration file in the current directory
with sensible defaults. The file can be customized to enable/disable rules,
change severities, and configure other options.

Examples:
  gosemlint init                     Create minimal .gosemlint.yml
  gosemlint init --full              Create full config with all rules documented
  gosemlint init --output custom.yml Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all rules documented")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .gosemlint.yml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".gosemlint.yml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content := generateConfigTemplate(flags.full)

	if err := os.WriteFile(absPath, []byte(content), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'gosemlint rules' to see all available rules")

	return nil
}

// generateConfigTemplate builds the starter YAML config. The full variant
// documents every registered rule with its default severity.
func generateConfigTemplate(full bool) string {
	var sb strings.Builder

	sb.WriteString(`# gosemlint configuration
# See: https://github.com/yaklabco/gosemlint

# Default severity for rules that don't specify one: error, warning, info
severity_default: warning

# Glob patterns for files to skip
ignore: []

`)

	if !full {
		sb.WriteString(`# Per-rule configuration, keyed by rule ID or name:
#
# rules:
#   heading-increment:
#     severity: error
#   single-h1:
#     enabled: true
#     options:
#       require_h1: true
rules: {}
`)
		return sb.String()
	}

	sb.WriteString("rules:\n")
	for _, rule := range lint.DefaultRegistry.Rules() {
		fmt.Fprintf(&sb, "  # %s\n", rule.Description())
		fmt.Fprintf(&sb, "  %s:\n", rule.Name())
		fmt.Fprintf(&sb, "    enabled: %t\n", rule.DefaultEnabled())
		fmt.Fprintf(&sb, "    severity: %s\n", rule.DefaultSeverity())
	}

	return sb.String()
}
