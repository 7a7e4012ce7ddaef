package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/crewplanhq/crewplan/internal/cli/formatter"
	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage teams",
	}

	cmd.AddCommand(
		newTeamAddCmd(app),
		newTeamListCmd(app),
		newTeamRemoveCmd(app),
	)

	return cmd
}

func newTeamAddCmd(app *App) *cobra.Command {
	var name, tiers string
	var total, busy float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new team",
		RunE: func(cmd *cobra.Command, args []string) error {
			tierHours, err := parseTierHours(tiers)
			if err != nil {
				return err
			}

			team := &domain.Team{
				Name:           name,
				TotalHeadcount: total,
				BusyHeadcount:  busy,
				TierHours:      tierHours,
			}
			if err := app.Teams.Create(context.Background(), team); err != nil {
				return err
			}

			fmt.Printf("Created team %s (%.2g people)\n", team.Name, team.TotalHeadcount)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Team name")
	cmd.Flags().Float64Var(&total, "total", 0, "Total headcount (fractions allowed)")
	cmd.Flags().Float64Var(&busy, "busy", 0, "Headcount permanently tied up elsewhere")
	cmd.Flags().StringVar(&tiers, "tiers", "", "Tier hours, e.g. \"1=40,2=80\"")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func newTeamListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := app.Teams.List(context.Background())
			if err != nil {
				return err
			}
			if len(teams) == 0 {
				fmt.Println("No teams found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatTeamList(teams))
			return nil
		},
	}
}

func newTeamRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			team, err := app.Teams.GetByName(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Teams.Delete(ctx, team.ID); err != nil {
				return err
			}
			fmt.Printf("Removed team %s\n", team.Name)
			return nil
		},
	}
}

// parseTierHours parses "1=40,2=80" into a tier-to-hours map.
func parseTierHours(s string) (map[int]float64, error) {
	if s == "" {
		return nil, nil
	}
	out := make(map[int]float64)
	for _, part := range strings.Split(s, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid tier entry %q (expected tier=hours)", part)
		}
		tier, err := strconv.Atoi(kv[0])
		if err != nil {
			return nil, fmt.Errorf("invalid tier %q: %w", kv[0], err)
		}
		hours, err := strconv.ParseFloat(kv[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid hours %q: %w", kv[1], err)
		}
		out[tier] = hours
	}
	return out, nil
}
