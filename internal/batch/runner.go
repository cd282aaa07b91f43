// Package batch fans single-hand parsing out over a worker pool and
// merges the results. Hand blocks are shared-nothing units of work: a
// failing block is recorded and skipped, never retried, and never
// aborts its siblings.
package batch

import (
	"context"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hhtools/hhparse/internal/handhistory"
	"github.com/hhtools/hhparse/internal/source"
)

// Runner configures a parse run.
type Runner struct {
	workers int
	filter  handhistory.Filter
	logger  zerolog.Logger
}

// NewRunner creates a runner. workers <= 0 selects a CPU-derived
// default; the cap mirrors the point of diminishing returns for
// regex-bound work.
func NewRunner(workers int, filter handhistory.Filter, logger zerolog.Logger) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > 8 {
			workers = 8
		}
	}
	return &Runner{workers: workers, filter: filter, logger: logger}
}

// Failure records one discarded hand block.
type Failure struct {
	Source     string
	Diagnostic string
}

// Result is the merged output of a run. Hands appear in input order:
// the parallel map writes into indexed slots, so scheduling order
// never changes the output.
type Result struct {
	Hands    []*handhistory.ParsedHand
	Failures []Failure
	Files    int
	Blocks   int
}

// TotalActions counts actions across all retained hands.
func (r *Result) TotalActions() int {
	n := 0
	for _, h := range r.Hands {
		n += len(h.Actions)
	}
	return n
}

type task struct {
	source string
	lines  []string
}

// Run segments every file and parses all hand blocks in parallel.
// Input-content problems never surface as an error here; only a
// cancelled context does.
func (r *Runner) Run(ctx context.Context, files []source.File) (*Result, error) {
	var tasks []task
	for _, file := range files {
		for _, block := range handhistory.SplitHands(file.Lines) {
			tasks = append(tasks, task{source: file.Name, lines: block})
		}
	}

	parsed := make([]*handhistory.ParsedHand, len(tasks))
	failures := make([]*Failure, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, t := range tasks {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			hand, err := handhistory.ParseHand(t.lines)
			if err != nil {
				failures[i] = &Failure{Source: t.source, Diagnostic: err.Error()}
				return nil
			}
			parsed[i] = hand
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Files: len(files), Blocks: len(tasks)}
	var kept []*handhistory.ParsedHand
	for i := range tasks {
		if failures[i] != nil {
			r.logger.Debug().
				Str("source", failures[i].Source).
				Str("diagnostic", failures[i].Diagnostic).
				Msg("discarded hand block")
			result.Failures = append(result.Failures, *failures[i])
			continue
		}
		kept = append(kept, parsed[i])
	}
	result.Hands = r.filter.Apply(kept)

	r.logger.Info().
		Int("files", result.Files).
		Int("blocks", result.Blocks).
		Int("hands", len(result.Hands)).
		Int("failed", len(result.Failures)).
		Msg("parse run complete")
	return result, nil
}
