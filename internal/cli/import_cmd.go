package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a portfolio snapshot from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportSnapshot(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d team(s), %d project(s), %d assignment(s)\n",
				result.TeamCount, result.ProjectCount, result.AssignmentCount)
			return nil
		},
	}
}
