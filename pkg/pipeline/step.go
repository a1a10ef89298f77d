package pipeline

import "context"

// Decision is the outcome of a step's skip predicate: either proceed with
// the action or skip it with a reason.
type Decision struct {
	skip   bool
	reason string
}

// Proceed lets the step's action run.
func Proceed() Decision { return Decision{} }

// Skip marks the step as skipped. The reason is shown to the user; an empty
// reason does not skip and is the same as Proceed.
func Skip(reason string) Decision {
	if reason == "" {
		return Proceed()
	}
	return Decision{skip: true, reason: reason}
}

// Skipped reports whether the decision skips the step.
func (d Decision) Skipped() bool { return d.skip }

// Reason returns the skip reason, empty when proceeding.
func (d Decision) Reason() string { return d.reason }

// Step is a named unit of pipeline work over a shared context value C.
type Step[C any] struct {
	Title  string
	Action func(ctx context.Context, cfg C) error

	// Enabled excludes the step from execution and reporting when it
	// returns false. Nil means always enabled.
	Enabled func(cfg C) bool

	// Skip is evaluated after Enabled. Nil means always proceed.
	Skip func(cfg C) Decision
}

func (s Step[C]) enabled(cfg C) bool {
	if s.Enabled == nil {
		return true
	}
	return s.Enabled(cfg)
}

func (s Step[C]) decide(cfg C) Decision {
	if s.Skip == nil {
		return Proceed()
	}
	return s.Skip(cfg)
}
