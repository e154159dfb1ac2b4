// Package script executes task and condition scripts as external processes.
//
// A script is a sequence of lines written to a temporary file and handed to
// an interpreter (the "runner"). The package exposes exit statuses, not
// errors: a script that cannot even be launched reports [LaunchFailureCode],
// so callers always receive a status they can gate on.
//
// For testing, consumers define their own runner interface and substitute a
// mock; see the condition package.
package script

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// LaunchFailureCode is the exit status reported when the script process
// could not be started at all (interpreter missing, temp file not writable).
// It mirrors the shell convention for "command not found".
const LaunchFailureCode = 127

// DefaultRunner returns the interpreter used when a task names none.
func DefaultRunner() string {
	if runtime.GOOS == "windows" {
		return "cmd.exe"
	}
	return "sh"
}

// Runner executes scripts and reports their exit status.
//
// Output handling is fixed at construction: [NewRunner] streams the script's
// output to the given writers, [NewQuietRunner] discards it. Condition
// scripts use the quiet form so gating probes do not pollute the task
// transcript.
type Runner struct {
	stdout io.Writer
	stderr io.Writer

	// defaultRunner is used when Run is called with an empty runner name.
	defaultRunner string
}

// NewRunner creates a Runner that streams script output to stdout/stderr.
func NewRunner(stdout, stderr io.Writer) *Runner {
	return &Runner{
		stdout:        stdout,
		stderr:        stderr,
		defaultRunner: DefaultRunner(),
	}
}

// NewQuietRunner creates a Runner that discards all script output.
func NewQuietRunner() *Runner {
	return NewRunner(io.Discard, io.Discard)
}

// SetDefaultRunner overrides the interpreter used for scripts that do not
// name their own.
func (r *Runner) SetDefaultRunner(name string) {
	if name != "" {
		r.defaultRunner = name
	}
}

// Run writes the script lines to a temporary file, executes them with the
// named runner (or the default when empty), and returns the process exit
// status. Status 0 means success; [LaunchFailureCode] means the process
// never started.
func (r *Runner) Run(script []string, runner string) int {
	if runner == "" {
		runner = r.defaultRunner
	}

	file, err := writeScriptFile(script)
	if err != nil {
		return LaunchFailureCode
	}
	defer os.Remove(file)

	args := []string{file}
	if strings.EqualFold(runner, "cmd") || strings.EqualFold(filepath.Base(runner), "cmd.exe") {
		args = []string{"/C", file}
	}

	cmd := exec.Command(runner, args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		return LaunchFailureCode
	}

	return 0
}

// writeScriptFile persists the script lines to a temp file and returns its
// path. The caller removes the file.
func writeScriptFile(script []string) (string, error) {
	ext := ".sh"
	if runtime.GOOS == "windows" {
		ext = ".cmd"
	}

	file, err := os.CreateTemp("", "taskforge-*"+ext)
	if err != nil {
		return "", err
	}

	content := strings.Join(script, "\n") + "\n"
	if _, err := file.WriteString(content); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", err
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", err
	}

	return filepath.Clean(file.Name()), nil
}
