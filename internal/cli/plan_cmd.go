package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/crewplanhq/crewplan/internal/cli/formatter"
	"github.com/crewplanhq/crewplan/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run, save, and compare schedules",
	}

	cmd.AddCommand(
		newPlanRunCmd(app),
		newPlanSaveCmd(app),
		newPlanCheckCmd(app),
		newPlanListCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

func newPlanRunCmd(app *App) *cobra.Command {
	var from string
	var persist, asJSON bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule the whole portfolio",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.PlanRequest{Persist: persist}
			if from != "" {
				start, err := time.Parse("2006-01-02", from)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", from, err)
				}
				req.RunStart = &start
			}

			resp, err := app.Plan.Run(context.Background(), req)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(resp)
			}
			fmt.Printf("%s\n", formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Schedule from this date instead of today (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&persist, "persist", false, "Write computed dates back to storage")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw plan response as JSON")

	return cmd
}

func newPlanSaveCmd(app *App) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "save <label>",
		Short: "Run the schedule and save it under a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := contract.PlanRequest{}
			if from != "" {
				start, err := time.Parse("2006-01-02", from)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", from, err)
				}
				req.RunStart = &start
			}

			resp, err := app.Plan.Run(ctx, req)
			if err != nil {
				return err
			}
			if err := app.Plan.Save(ctx, args[0], resp); err != nil {
				return err
			}

			fmt.Printf("Saved plan %q (%s)\n", args[0], resp.Fingerprint[:12])
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Schedule from this date instead of today (YYYY-MM-DD)")
	return cmd
}

func newPlanCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <label>",
		Short: "Compare the current schedule against a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			drift, err := app.Plan.Check(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatDrift(drift))
			return nil
		},
	}
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.Plan.ListSaved(context.Background())
			if err != nil {
				return err
			}
			if len(saved) == 0 {
				fmt.Println("No saved plans.")
				return nil
			}

			rows := make([][]string, 0, len(saved))
			for _, p := range saved {
				hash := p.Fingerprint
				if len(hash) > 12 {
					hash = hash[:12]
				}
				rows = append(rows, []string{
					p.Label,
					p.CreatedAt.UTC().Format("2006-01-02 15:04"),
					formatter.Dim(hash),
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"Label", "Saved", "Fingerprint"}, rows))
			return nil
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <label>",
		Short: "Delete a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plan.DeleteSaved(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed plan %q\n", args[0])
			return nil
		},
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
