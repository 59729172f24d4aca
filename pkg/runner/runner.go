package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/gosemlint/pkg/config"
	"github.com/yaklabco/gosemlint/pkg/fsutil"
	"github.com/yaklabco/gosemlint/pkg/lint"
)

// Runner orchestrates multi-document auditing with a lint.Engine.
type Runner struct {
	// Engine handles per-document parsing and rule execution.
	Engine *lint.Engine
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns a deterministic collection of FileOutcome values and
// aggregate stats.
//
// Every document gets its own snapshot and diagnostics, so workers share
// nothing mutable; the engine and its rules are stateless. Results are
// reassembled in discovery order regardless of worker completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts.Config)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Collect into a map; workers complete out of order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	// Build the result in deterministic order.
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// RunContent audits a single in-memory document (e.g. stdin input).
func (r *Runner) RunContent(ctx context.Context, path string, content []byte, cfg *config.Config) (*Result, error) {
	result := &Result{Stats: newStats()}
	result.Stats.FilesDiscovered = 1

	outcome := FileOutcome{Path: path}
	dr, err := r.Engine.LintDocument(ctx, path, content, cfg)
	if err != nil {
		outcome.Error = err
	} else {
		outcome.Result = dr
	}

	result.accumulate(outcome)
	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	cfg *config.Config,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}

		content, _, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			outcome.Error = err
		} else {
			dr, lintErr := r.Engine.LintDocument(ctx, path, content, cfg)
			if lintErr != nil {
				outcome.Error = lintErr
			} else {
				outcome.Result = dr
			}
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
