package cli

import (
	"github.com/spf13/cobra"
)

func newCheckCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <task>",
		Short: "Evaluate a task's condition without running it",
		Long: `Evaluate whether a task would be allowed to run right now.

The declarative condition is checked and, if it holds, the condition
script (if any) is executed. The task body never runs. Exits 0 when the
condition holds and 1 when it does not, so scripts can branch on it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, err := app.executor()
			if err != nil {
				return err
			}

			allowed, err := exec.Check(args[0])
			if err != nil {
				return err
			}

			app.Printer.Verdict(args[0], allowed)
			if !allowed {
				return NewExitError(1)
			}
			return nil
		},
	}
}
