package cli

import (
	"sort"

	"github.com/spf13/cobra"
)

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks and their current condition verdicts",
		Long: `List every task in the task file with its description and whether
its condition holds in the current context (✓ would run, ○ would be
skipped). Condition scripts are executed as part of each verdict.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := app.loadTasks()
			if err != nil {
				return err
			}
			exec, err := app.executor()
			if err != nil {
				return err
			}

			names := tf.Names()
			sort.Strings(names)

			for _, name := range names {
				allowed, err := exec.Check(name)
				if err != nil {
					return err
				}
				app.Printer.ListEntry(name, tf.Tasks[name].Description, allowed)
			}
			return nil
		},
	}
}
