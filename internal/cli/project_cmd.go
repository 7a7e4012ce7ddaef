package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/crewplanhq/crewplan/internal/cli/formatter"
	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/spf13/cobra"
)

// resolveProjectID accepts a short ID, a full UUID, or a unique UUID prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ShortID != "" && strings.EqualFold(p.ShortID, input) {
			return p.ID, nil
		}
	}
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectSetCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, shortID, start, target string
	var priority int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				ShortID:  strings.ToUpper(shortID),
				Name:     name,
				Priority: priority,
				Status:   domain.ProjectActive,
			}

			if start != "" {
				startHint, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartHint = &startHint
			}
			if target != "" {
				targetDate, err := time.Parse("2006-01-02", target)
				if err != nil {
					return fmt.Errorf("invalid target date %q: %w", target, err)
				}
				p.TargetDate = &targetDate
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s\n", p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&shortID, "id", "", "Short ID (2-6 uppercase letters + up to 4 digits, e.g. ALPHA1)")
	cmd.Flags().IntVar(&priority, "priority", 100, "Priority (lower schedules first)")
	cmd.Flags().StringVar(&start, "start", "", "Earliest start for any of the project's work (YYYY-MM-DD)")
	cmd.Flags().StringVar(&target, "target", "", "Target date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived projects")
	return cmd
}

func newProjectSetCmd(app *App) *cobra.Command {
	var priority int
	var status string

	cmd := &cobra.Command{
		Use:   "set <project>",
		Short: "Update a project's priority or status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("priority") {
				p.Priority = priority
			}
			if status != "" {
				p.Status = domain.ProjectStatus(status)
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Updated project %s\n", p.DisplayID())
			return nil
		},
	}

	cmd.Flags().IntVar(&priority, "priority", 0, "New priority")
	cmd.Flags().StringVar(&status, "status", "", "New status (active, paused, done, archived)")
	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <project>",
		Short: "Delete a project and its assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Removed project.")
			return nil
		},
	}
}
