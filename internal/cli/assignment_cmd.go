package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/crewplanhq/crewplan/internal/cli/formatter"
	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/spf13/cobra"
)

func newAssignmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assignment",
		Aliases: []string{"assign"},
		Short:   "Manage assignments of teams to project phases",
	}

	cmd.AddCommand(
		newAssignmentAddCmd(app),
		newAssignmentListCmd(app),
		newAssignmentRemoveCmd(app),
	)

	return cmd
}

func newAssignmentAddCmd(app *App) *cobra.Command {
	var project, team, phase, ready string
	var order, tier int
	var headcount, hours, estimate float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Assign a team to a project phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			t, err := app.Teams.GetByName(ctx, team)
			if err != nil {
				return err
			}

			a := &domain.Assignment{
				ProjectID:     projectID,
				TeamID:        t.ID,
				Phase:         phase,
				PhaseOrder:    order,
				Tier:          tier,
				Headcount:     headcount,
				HoursOverride: hours,
				EstimateHours: estimate,
			}

			if ready != "" {
				readyDate, err := time.Parse("2006-01-02", ready)
				if err != nil {
					return fmt.Errorf("invalid ready date %q: %w", ready, err)
				}
				a.ReadyDate = &readyDate
			}

			if err := app.Assignments.Create(ctx, a); err != nil {
				return err
			}

			fmt.Printf("Assigned %s to phase %q (%.2g people)\n", t.Name, a.Phase, a.Headcount)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID prefix)")
	cmd.Flags().StringVar(&team, "team", "", "Team name")
	cmd.Flags().StringVar(&phase, "phase", "", "Phase name")
	cmd.Flags().IntVar(&order, "order", 0, "Phase order within the project")
	cmd.Flags().IntVar(&tier, "tier", 0, "Work tier for hour lookup")
	cmd.Flags().Float64Var(&headcount, "headcount", 1, "People requested (fractions allowed)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Explicit hours override")
	cmd.Flags().Float64Var(&estimate, "estimate", 0, "Fallback hour estimate")
	cmd.Flags().StringVar(&ready, "ready", "", "Earliest start date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("phase")

	return cmd
}

func newAssignmentListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var assignments []*domain.Assignment
			var err error
			if project != "" {
				var projectID string
				projectID, err = resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				assignments, err = app.Assignments.ListByProject(ctx, projectID)
			} else {
				assignments, err = app.Assignments.ListAll(ctx)
			}
			if err != nil {
				return err
			}
			if len(assignments) == 0 {
				fmt.Println("No assignments found.")
				return nil
			}

			projectNames, teamNames, err := nameLookups(ctx, app)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatAssignmentList(assignments, projectNames, teamNames))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Only this project (short ID or UUID prefix)")
	return cmd
}

func newAssignmentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <assignment-id>",
		Short: "Delete an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Assignments.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Removed assignment.")
			return nil
		},
	}
}

func nameLookups(ctx context.Context, app *App) (map[string]string, map[string]string, error) {
	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return nil, nil, err
	}
	teams, err := app.Teams.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	projectNames := make(map[string]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}
	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}
	return projectNames, teamNames, nil
}
