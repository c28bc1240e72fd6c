package cli

import (
	"context"
	"fmt"

	"github.com/pacerapp/pacer/internal/app"
	"github.com/pacerapp/pacer/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *App) *cobra.Command {
	var (
		date      string
		auditTail int
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show load ratio, readiness and the upcoming schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			req := app.NewStatusRequest()
			req.Now = now
			if cmd.Flags().Changed("audit") {
				req.AuditTail = auditTail
			}

			resp, err := a.Status.GetStatus(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(resp))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date)
	cmd.Flags().IntVar(&auditTail, "audit", 5, "Number of adaptation log entries to show")

	return cmd
}
