// Package cli wires the taskforge command line interface.
//
// Commands are created as factories taking the shared [App], which carries
// the loaded settings and lazily builds the task executor once persistent
// flags (--taskfile, --profile, --verbose) are known. Failures propagate as
// [ExitError] values so exit codes stay testable; only [Execute] ever calls
// os.Exit.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"taskforge/internal/condition"
	"taskforge/internal/config"
	"taskforge/internal/output"
	"taskforge/internal/profile"
	"taskforge/internal/runner"
	"taskforge/internal/script"
	"taskforge/internal/taskfile"
)

// TaskExecutor is the command-facing surface of the task runner.
// The [runner.Executor] type implements this interface; tests inject mocks.
type TaskExecutor interface {
	Run(name string) (int, error)
	Check(name string) (bool, error)
}

// App carries shared state across commands.
type App struct {
	Config  *config.Config
	Printer *output.Printer

	// Executor, when set, overrides production wiring. Intended for tests.
	Executor TaskExecutor

	// Tasks, when set, overrides task file loading. Intended for tests.
	Tasks *taskfile.Taskfile

	// persistent flag values
	taskfilePath string
	profileName  string
	verbose      bool
}

// NewApp creates an App over loaded settings.
func NewApp(cfg *config.Config) *App {
	printer := output.NewPrinter()
	printer.SetColor(cfg.Output.Color)
	return &App{
		Config:  cfg,
		Printer: printer,
	}
}

// loadTasks returns the task definitions, loading the task file on first use.
func (a *App) loadTasks() (*taskfile.Taskfile, error) {
	if a.Tasks != nil {
		return a.Tasks, nil
	}

	path := taskfile.ResolvePath("", firstNonEmpty(a.taskfilePath, a.Config.Taskfile))
	tf, err := taskfile.Load(path)
	if err != nil {
		return nil, err
	}
	a.Tasks = tf
	return tf, nil
}

// executor returns the task executor, building production wiring on first
// use: taskfile resolver, condition evaluator with a quiet script runner for
// gates, and an output-streaming runner for task bodies.
func (a *App) executor() (TaskExecutor, error) {
	if a.Executor != nil {
		return a.Executor, nil
	}

	tf, err := a.loadTasks()
	if err != nil {
		return nil, err
	}

	gateScripts := script.NewQuietRunner()
	gateScripts.SetDefaultRunner(a.Config.DefaultScriptRunner)
	evaluator := condition.NewEvaluator(gateScripts)

	taskScripts := script.NewRunner(os.Stdout, os.Stderr)
	taskScripts.SetDefaultRunner(a.Config.DefaultScriptRunner)

	flow := runner.NewFlowInfo(a.Config)
	exec := runner.NewExecutor(flow, taskfile.NewResolver(tf), evaluator, taskScripts, a.Printer)
	a.Executor = exec
	return exec, nil
}

// NewRootCommand builds the taskforge root command with all subcommands.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "taskforge",
		Short:         "Run declaratively gated tasks",
		Long:          "taskforge runs tasks from a YAML task file, gating each task on\nits declared conditions: platform, profile, toolchain channel and\nversion, environment variables and an optional condition script.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if app.profileName != "" {
				profile.Set(app.profileName)
			}
			level := slog.LevelInfo
			if app.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	root.PersistentFlags().StringVar(&app.taskfilePath, "taskfile", "", "path to the task file")
	root.PersistentFlags().StringVarP(&app.profileName, "profile", "p", "", "active build profile")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable condition trace logging")

	root.AddCommand(newRunCommand(app))
	root.AddCommand(newCheckCommand(app))
	root.AddCommand(newListCommand(app))

	return root
}

// ExecuteResult carries the outcome of one CLI invocation.
type ExecuteResult struct {
	ExitCode int
	Err      error
}

// Run executes the CLI with the given arguments and returns the result
// without terminating the process.
func Run(args []string) ExecuteResult {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return ExecuteResult{ExitCode: 1, Err: err}
	}

	app := NewApp(cfg)
	root := NewRootCommand(app)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{}
}

// Execute runs the CLI and exits the process with the resulting code.
func Execute() {
	result := Run(os.Args[1:])
	if result.ExitCode != 0 {
		os.Exit(result.ExitCode)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
