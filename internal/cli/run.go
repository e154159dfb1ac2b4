package cli

import (
	"github.com/spf13/cobra"
)

func newRunCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run <task>",
		Short: "Run a task if its condition holds",
		Long: `Run a single task from the task file.

The task's condition (platform, profile, toolchain channel/version,
environment constraints and optional condition script) is evaluated first.
A task whose condition does not hold is skipped and the command exits 0;
a task script that fails propagates its exit status.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, err := app.executor()
			if err != nil {
				return err
			}

			status, err := exec.Run(args[0])
			if err != nil {
				return err
			}
			if status != 0 {
				return NewExitError(status)
			}
			return nil
		},
	}
}
