package cli

import "github.com/yaklabco/gosemlint/pkg/runner"

// Exit codes for gosemlint.
const (
	// ExitSuccess indicates successful execution with no error findings.
	ExitSuccess = 0

	// ExitLintErrors indicates the audit completed but found error-severity
	// findings (or warnings in strict mode).
	ExitLintErrors = 1

	// ExitInputError indicates an input could not be read or decoded, or
	// the invocation itself was invalid.
	ExitInputError = 2
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
// Input errors dominate lint findings. Warnings never affect the exit code
// unless strict mode is enabled.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasInputErrors() {
		return ExitInputError
	}

	if result.HasFailures() {
		return ExitLintErrors
	}

	if strict && result.HasWarnings() {
		return ExitLintErrors
	}

	return ExitSuccess
}
