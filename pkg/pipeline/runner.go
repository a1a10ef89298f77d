// Package pipeline runs an ordered list of conditionally enabled steps
// against one shared value, stopping at the first failure.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var errNoAction = errors.New("step has no action")

// Observer is notified of every step transition. Observers only watch;
// the result of Run does not depend on them.
type Observer interface {
	StepChanged(Report)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Report)

func (f ObserverFunc) StepChanged(r Report) { f(r) }

// Runner executes step lists.
type Runner[C any] struct {
	observers []Observer
	now       func() time.Time
}

// NewRunner creates a runner that reports transitions to observers.
func NewRunner[C any](observers ...Observer) *Runner[C] {
	return &Runner[C]{observers: observers, now: time.Now}
}

// Run executes steps strictly in order. For each step Enabled is evaluated
// first, then Skip, then the action. The first failing action stops the run
// and is returned as a *StepError; side effects of completed steps are kept.
// The returned Result is never nil.
func (r *Runner[C]) Run(ctx context.Context, steps []Step[C], cfg C) (*Result, error) {
	result := &Result{}

	for i, step := range steps {
		if !step.enabled(cfg) {
			slog.Debug("step disabled", "step", step.Title)
			continue
		}

		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("pipeline stopped before step %q: %w", step.Title, err)
		}

		rep := Report{Index: i, Title: step.Title, State: StatePending}
		r.notify(rep)

		if d := step.decide(cfg); d.Skipped() {
			rep.State = StateSkipped
			rep.Reason = d.Reason()
			slog.Info("step skipped", "step", step.Title, "reason", rep.Reason)
			r.finish(result, rep)
			continue
		}

		rep.State = StateRunning
		r.notify(rep)
		slog.Info("running step", "step", step.Title)

		started := r.now()
		err := errNoAction
		if step.Action != nil {
			err = step.Action(ctx, cfg)
		}
		rep.Elapsed = r.now().Sub(started)

		if err != nil {
			rep.State = StateFailed
			rep.Err = err
			r.finish(result, rep)
			return result, &StepError{Index: i, Title: step.Title, Err: err}
		}

		rep.State = StateCompleted
		r.finish(result, rep)
	}

	return result, nil
}

// Run is a convenience wrapper around NewRunner(observers...).Run.
func Run[C any](ctx context.Context, steps []Step[C], cfg C, observers ...Observer) (*Result, error) {
	return NewRunner[C](observers...).Run(ctx, steps, cfg)
}

func (r *Runner[C]) finish(result *Result, rep Report) {
	result.Steps = append(result.Steps, rep)
	r.notify(rep)
}

func (r *Runner[C]) notify(rep Report) {
	for _, o := range r.observers {
		o.StepChanged(rep)
	}
}
