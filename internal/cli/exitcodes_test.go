package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gosemlint/pkg/runner"
)

func resultWith(severities map[string]int, filesErrored int) *runner.Result {
	total := 0
	for _, n := range severities {
		total += n
	}
	return &runner.Result{Stats: runner.Stats{
		DiagnosticsTotal:      total,
		DiagnosticsBySeverity: severities,
		FilesErrored:          filesErrored,
	}}
}

func TestExitCodeFromResult(t *testing.T) {
	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{
			name:   "nil result",
			result: nil,
			want:   ExitSuccess,
		},
		{
			name:   "clean run",
			result: resultWith(map[string]int{}, 0),
			want:   ExitSuccess,
		},
		{
			name:   "errors",
			result: resultWith(map[string]int{"error": 2}, 0),
			want:   ExitLintErrors,
		},
		{
			name:   "warnings only",
			result: resultWith(map[string]int{"warning": 3}, 0),
			want:   ExitSuccess,
		},
		{
			name:   "warnings in strict mode",
			result: resultWith(map[string]int{"warning": 3}, 0),
			strict: true,
			want:   ExitLintErrors,
		},
		{
			name:   "info never fails",
			result: resultWith(map[string]int{"info": 5}, 0),
			strict: true,
			want:   ExitSuccess,
		},
		{
			name:   "input errors dominate lint errors",
			result: resultWith(map[string]int{"error": 2}, 1),
			want:   ExitInputError,
		},
		{
			name:   "input errors alone",
			result: resultWith(map[string]int{}, 1),
			want:   ExitInputError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromResult(tt.result, tt.strict))
		})
	}
}
