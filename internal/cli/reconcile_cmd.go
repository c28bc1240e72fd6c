package cli

import (
	"context"
	"fmt"

	"github.com/pacerapp/pacer/internal/app"
	"github.com/pacerapp/pacer/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReconcileCmd(a *App) *cobra.Command {
	var (
		date   string
		replan bool
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Match past planned sessions against logged workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			req := app.NewReconcileRequest()
			req.Now = now
			req.Replan = replan

			resp, err := a.Reconcile.Reconcile(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReconcile(resp))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date)
	cmd.Flags().BoolVar(&replan, "replan", true, "Run a fresh planning pass after reconciling")

	return cmd
}
