// Package report prints pipeline progress for humans.
package report

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/systemstart/kickstart/pkg/pipeline"
)

type styles struct {
	running lipgloss.Style
	done    lipgloss.Style
	skipped lipgloss.Style
	failed  lipgloss.Style
	muted   lipgloss.Style
	hint    lipgloss.Style
}

func newStyles() styles {
	return styles{
		running: lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")),
		done:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a6e3a1")),
		skipped: lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
		failed:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f38ba8")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
		hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("#e7c99a")),
	}
}

// Display writes one line per step transition. It implements pipeline.Observer.
type Display struct {
	mu     sync.Mutex
	w      io.Writer
	errW   io.Writer
	styles styles
}

// NewDisplay creates a display writing to w.
func NewDisplay(w io.Writer) *Display {
	return &Display{w: w, errW: w, styles: newStyles()}
}

// ErrorsTo sends the failure banner to w instead.
func (d *Display) ErrorsTo(w io.Writer) *Display {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errW = w
	return d
}

func (d *Display) StepChanged(r pipeline.Report) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch r.State {
	case pipeline.StateRunning:
		fmt.Fprintf(d.w, "%s %s\n", d.styles.running.Render("›"), r.Title)
	case pipeline.StateCompleted:
		fmt.Fprintf(d.w, "%s %s %s\n", d.styles.done.Render("✔"), r.Title,
			d.styles.muted.Render(r.Elapsed.Round(time.Millisecond).String()))
	case pipeline.StateSkipped:
		fmt.Fprintf(d.w, "%s %s %s\n", d.styles.skipped.Render("↓"), r.Title,
			d.styles.muted.Render("[skipped: "+r.Reason+"]"))
	case pipeline.StateFailed:
		fmt.Fprintf(d.w, "%s %s\n  %s\n", d.styles.failed.Render("✖"), r.Title, r.Err)
	}
}

// Hint prints a muted guidance line.
func (d *Display) Hint(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.w, d.styles.hint.Render(msg))
}

// Done prints the success banner.
func (d *Display) Done() {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, "%s. Project ready\n", d.styles.done.Render("DONE"))
}

// Error prints the failure banner.
func (d *Display) Error(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.errW, "%s  %s\n", d.styles.failed.Render("ERROR"), msg)
}
