package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/crewplanhq/crewplan/internal/cli/formatter"
	"github.com/crewplanhq/crewplan/internal/contract"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var on string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show where each project stands in the stored schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.StatusRequest{}
			if on != "" {
				ref, err := time.Parse("2006-01-02", on)
				if err != nil {
					return fmt.Errorf("invalid reference date %q: %w", on, err)
				}
				req.Now = &ref
			}

			resp, err := app.Status.GetStatus(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatStatus(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Reference date instead of today (YYYY-MM-DD)")
	return cmd
}
