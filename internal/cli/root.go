package cli

import (
	"github.com/crewplanhq/crewplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Teams       service.TeamService
	Projects    service.ProjectService
	Assignments service.AssignmentService
	Plan        service.PlanService
	Status      service.StatusService
	Import      service.ImportService
}

// NewRootCmd creates the top-level "crewplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "crewplan",
		Short: "Team capacity planner and portfolio scheduler",
	}

	root.AddCommand(
		newTeamCmd(app),
		newProjectCmd(app),
		newAssignmentCmd(app),
		newPlanCmd(app),
		newStatusCmd(app),
		newImportCmd(app),
	)

	return root
}
