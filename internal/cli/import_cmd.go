package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a scope definition from a YAML file",
		Long: "Import a scope definition from a YAML file. The file is " +
			"validated up front and applied in a single transaction; an " +
			"invalid file leaves the existing scope untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportScope(context.Background(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d members, %d projects, %d workflows, %d assignments\n",
				result.MemberCount, result.ProjectCount, result.WorkflowCount, result.AssignmentCount)
			if result.SettingsApplied {
				fmt.Fprintln(out, "Calendar settings applied from file")
			}
			return nil
		},
	}
}
