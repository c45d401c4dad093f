// Package pipeline provides the sequential stage runner for scaffolding runs.
//
// A run is an ordered list of stages. Stages execute strictly in order, each
// stage's side effects are visible before the next stage starts, and the first
// failing stage aborts the whole run. There are no retries.
package pipeline

import (
	"context"

	"github.com/libforge/cli/internal/output"
)

// Stage is a single step of a scaffolding run.
type Stage struct {
	// Title is shown to the user while the stage runs.
	Title string

	// Run executes the stage. A non-nil error aborts the run.
	Run func(ctx context.Context) error
}

// Runner executes stages in order.
type Runner struct {
	stages []Stage

	// spin enables the TTY spinner around each stage. Tests disable it.
	spin bool
}

// NewRunner creates a runner for the given stages.
func NewRunner(stages []Stage) *Runner {
	return &Runner{stages: stages, spin: true}
}

// WithoutSpinner disables the per-stage spinner. Titles are still logged.
func (r *Runner) WithoutSpinner() *Runner {
	r.spin = false
	return r
}

// Run executes all stages in order and stops at the first failure.
// The returned error identifies the failing stage.
func (r *Runner) Run(ctx context.Context) error {
	total := len(r.stages)

	for i, stage := range r.stages {
		if err := ctx.Err(); err != nil {
			return err
		}

		output.Debug("stage starting", "index", i+1, "total", total, "title", stage.Title)

		run := stage.Run
		var err error
		if r.spin && output.IsTTY() {
			err = output.RunWithSpinner(ctx, func() error { return run(ctx) },
				output.WithTitle(output.FormatStageTitle(i+1, total, stage.Title)))
		} else {
			output.Info(output.FormatStageTitle(i+1, total, stage.Title))
			err = run(ctx)
		}

		if err != nil {
			return &StageError{Title: stage.Title, Index: i + 1, Err: err}
		}

		output.Debug("stage complete", "index", i+1, "title", stage.Title)
	}

	return nil
}
