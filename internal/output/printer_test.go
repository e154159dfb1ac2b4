package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestPrinter returns a plain (uncolored) printer over a buffer so
// assertions see no escape codes.
func newTestPrinter() (*Printer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	p := NewPrinterWithWriter(buf)
	p.SetColor(false)
	return p, buf
}

func TestPrinter_TaskLines(t *testing.T) {
	p, buf := newTestPrinter()

	p.TaskStart("build")
	p.TaskSuccess("build")
	p.TaskSkipped("deploy")
	p.TaskFailure("test", 2)

	out := buf.String()
	assert.Contains(t, out, "Running task: build")
	assert.Contains(t, out, "✓ Task completed: build")
	assert.Contains(t, out, "○ Skipped task: deploy (condition not met)")
	assert.Contains(t, out, "✗ Task failed: test (exit status 2)")
}

func TestPrinter_Verdict(t *testing.T) {
	p, buf := newTestPrinter()

	p.Verdict("build", true)
	p.Verdict("deploy", false)

	assert.Contains(t, buf.String(), "✓ build")
	assert.Contains(t, buf.String(), "✗ deploy")
}

func TestPrinter_ListEntry(t *testing.T) {
	p, buf := newTestPrinter()

	p.ListEntry("build", "Compile the project", true)
	p.ListEntry("deploy", "", false)

	out := buf.String()
	assert.Contains(t, out, "✓ build — Compile the project")
	assert.Contains(t, out, "○ deploy")
	assert.NotContains(t, out, "deploy —")
}
