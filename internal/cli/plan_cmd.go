package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pacerapp/pacer/internal/app"
	"github.com/pacerapp/pacer/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *App) *cobra.Command {
	var (
		date     string
		days     int
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run a planning pass and replace the upcoming window",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			req := app.NewPlanRequest()
			req.Now = now
			if cmd.Flags().Changed("days") {
				req.WindowDays = days
			}

			resp, err := a.Plan.Plan(context.Background(), req)
			if err != nil {
				return err
			}

			if jsonMode {
				data, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date)
	cmd.Flags().IntVar(&days, "days", 0, "Planning horizon in days (7-14)")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Emit the plan as JSON")

	return cmd
}
