package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskforge/internal/config"
	"taskforge/internal/output"
	"taskforge/internal/taskfile"
)

// mockExecutor implements TaskExecutor for command tests.
type mockExecutor struct {
	runStatus int
	runErr    error
	allowed   map[string]bool
	checkErr  error

	ranTasks     []string
	checkedTasks []string
}

func (m *mockExecutor) Run(name string) (int, error) {
	m.ranTasks = append(m.ranTasks, name)
	return m.runStatus, m.runErr
}

func (m *mockExecutor) Check(name string) (bool, error) {
	m.checkedTasks = append(m.checkedTasks, name)
	if m.checkErr != nil {
		return false, m.checkErr
	}
	return m.allowed[name], nil
}

// newTestApp builds an App with injected mocks and a captured printer.
func newTestApp(exec TaskExecutor, tf *taskfile.Taskfile) (*App, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	printer := output.NewPrinterWithWriter(buf)
	printer.SetColor(false)

	app := NewApp(config.DefaultConfig())
	app.Printer = printer
	app.Executor = exec
	app.Tasks = tf
	return app, buf
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func TestRunCommand_Success(t *testing.T) {
	exec := &mockExecutor{}
	app, _ := newTestApp(exec, nil)

	err := execute(t, app, "run", "build")

	require.NoError(t, err)
	assert.Equal(t, []string{"build"}, exec.ranTasks)
}

func TestRunCommand_PropagatesExitStatus(t *testing.T) {
	exec := &mockExecutor{runStatus: 3}
	app, _ := newTestApp(exec, nil)

	err := execute(t, app, "run", "build")

	require.Error(t, err)
	code, ok := IsExitError(err)
	require.True(t, ok)
	assert.Equal(t, 3, code)
}

func TestRunCommand_UnknownTask(t *testing.T) {
	exec := &mockExecutor{runStatus: 1, runErr: errors.New("task not found: nope")}
	app, _ := newTestApp(exec, nil)

	err := execute(t, app, "run", "nope")

	require.Error(t, err)
	_, ok := IsExitError(err)
	assert.False(t, ok)
}

func TestCheckCommand(t *testing.T) {
	t.Run("condition holds", func(t *testing.T) {
		exec := &mockExecutor{allowed: map[string]bool{"build": true}}
		app, buf := newTestApp(exec, nil)

		err := execute(t, app, "check", "build")

		require.NoError(t, err)
		assert.Equal(t, []string{"build"}, exec.checkedTasks)
		assert.Contains(t, buf.String(), "✓ build")
	})

	t.Run("condition fails with exit 1", func(t *testing.T) {
		exec := &mockExecutor{allowed: map[string]bool{}}
		app, buf := newTestApp(exec, nil)

		err := execute(t, app, "check", "build")

		require.Error(t, err)
		code, ok := IsExitError(err)
		require.True(t, ok)
		assert.Equal(t, 1, code)
		assert.Contains(t, buf.String(), "✗ build")
	})
}

func TestListCommand(t *testing.T) {
	tf := &taskfile.Taskfile{Tasks: map[string]config.TaskConfig{
		"build":  {Description: "Compile"},
		"deploy": {Description: "Ship it"},
	}}
	exec := &mockExecutor{allowed: map[string]bool{"build": true}}
	app, buf := newTestApp(exec, tf)

	err := execute(t, app, "list")

	require.NoError(t, err)
	// Sorted order, verdict markers per task.
	assert.Equal(t, []string{"build", "deploy"}, exec.checkedTasks)
	assert.Contains(t, buf.String(), "✓ build — Compile")
	assert.Contains(t, buf.String(), "○ deploy — Ship it")
}

func TestApp_LoadTasks_FromFlagPath(t *testing.T) {
	t.Setenv(taskfile.EnvVarName, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  hello:\n    script: [\"echo hi\"]\n"), 0644))

	app := NewApp(config.DefaultConfig())
	app.taskfilePath = path

	tf, err := app.loadTasks()

	require.NoError(t, err)
	assert.Contains(t, tf.Tasks, "hello")
}

func TestApp_LoadTasks_MissingFile(t *testing.T) {
	t.Setenv(taskfile.EnvVarName, "")

	app := NewApp(config.DefaultConfig())
	app.taskfilePath = filepath.Join(t.TempDir(), "absent.yaml")

	_, err := app.loadTasks()
	assert.Error(t, err)
}

func TestIsExitError(t *testing.T) {
	code, ok := IsExitError(NewExitError(7))
	assert.True(t, ok)
	assert.Equal(t, 7, code)

	_, ok = IsExitError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = IsExitError(nil)
	assert.False(t, ok)
}
