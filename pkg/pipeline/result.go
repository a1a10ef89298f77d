package pipeline

import (
	"fmt"
	"time"
)

// State is the lifecycle position of a step.
type State int

const (
	StatePending State = iota
	StateRunning
	StateCompleted
	StateSkipped
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateSkipped:
		return "skipped"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Report describes a step at one point of its lifecycle.
type Report struct {
	Index   int // position in the step list given to Run
	Title   string
	State   State
	Reason  string // set for skipped steps
	Err     error  // set for failed steps
	Elapsed time.Duration
}

// Result holds the final report of every enabled step the runner reached,
// in list order.
type Result struct {
	Steps []Report
}

// Titles returns the titles of the steps in the given state.
func (r *Result) Titles(state State) []string {
	var titles []string
	for _, s := range r.Steps {
		if s.State == state {
			titles = append(titles, s.Title)
		}
	}
	return titles
}

// Find returns the report for the step with the given title.
func (r *Result) Find(title string) (Report, bool) {
	for _, s := range r.Steps {
		if s.Title == title {
			return s, true
		}
	}
	return Report{}, false
}

// Failed returns the failed step, if any.
func (r *Result) Failed() (Report, bool) {
	for _, s := range r.Steps {
		if s.State == StateFailed {
			return s, true
		}
	}
	return Report{}, false
}

// StepError is returned by Run when a step's action fails.
type StepError struct {
	Index int
	Title string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Title, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
