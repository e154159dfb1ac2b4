// Package output formats taskforge's terminal output.
//
// The [Printer] renders task progress and verdict lines with lipgloss
// styling. Construct with [NewPrinter] for stdout or [NewPrinterWithWriter]
// to capture output in tests.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeader = lipgloss.NewStyle().
			Bold(true)

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("green")).
			Bold(true)

	styleFailure = lipgloss.NewStyle().
			Foreground(lipgloss.Color("red")).
			Bold(true)

	styleSkipped = lipgloss.NewStyle().
			Foreground(lipgloss.Color("yellow"))

	styleMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Printer renders task progress to a writer.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a Printer writing to stdout with styling enabled.
func NewPrinter() *Printer {
	return NewPrinterWithWriter(os.Stdout)
}

// NewPrinterWithWriter creates a Printer writing to w. Used by tests to
// capture output.
func NewPrinterWithWriter(w io.Writer) *Printer {
	return &Printer{w: w, color: true}
}

// SetColor toggles styled rendering. With color off, lines are printed
// plain, which also keeps test assertions free of escape codes.
func (p *Printer) SetColor(enabled bool) {
	p.color = enabled
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// TaskStart announces a task about to run.
func (p *Printer) TaskStart(name string) {
	fmt.Fprintf(p.w, "%s\n", p.render(styleHeader, "Running task: "+name))
}

// TaskSkipped reports a task whose condition did not hold.
func (p *Printer) TaskSkipped(name string) {
	fmt.Fprintf(p.w, "%s\n", p.render(styleSkipped, "○ Skipped task: "+name+" (condition not met)"))
}

// TaskSuccess reports a task that completed with status 0.
func (p *Printer) TaskSuccess(name string) {
	fmt.Fprintf(p.w, "%s\n", p.render(styleSuccess, "✓ Task completed: "+name))
}

// TaskFailure reports a task that exited non-zero.
func (p *Printer) TaskFailure(name string, exitStatus int) {
	fmt.Fprintf(p.w, "%s\n", p.render(styleFailure, fmt.Sprintf("✗ Task failed: %s (exit status %d)", name, exitStatus)))
}

// Verdict reports a check command result for one task.
func (p *Printer) Verdict(name string, allowed bool) {
	if allowed {
		fmt.Fprintf(p.w, "%s %s\n", p.render(styleSuccess, "✓"), name)
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", p.render(styleFailure, "✗"), name)
}

// ListEntry renders one line of `taskforge list`.
func (p *Printer) ListEntry(name, description string, allowed bool) {
	marker := p.render(styleSuccess, "✓")
	if !allowed {
		marker = p.render(styleSkipped, "○")
	}
	if description != "" {
		description = " " + p.render(styleMuted, "— "+description)
	}
	fmt.Fprintf(p.w, "%s %s%s\n", marker, name, description)
}
