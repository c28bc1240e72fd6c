package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pacerapp/pacer/internal/app"
	"github.com/pacerapp/pacer/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScheduleCmd(a *App) *cobra.Command {
	var (
		date     string
		from     string
		to       string
		jsonMode bool
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show or export the stored schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			fromDate, err := parseDateFlag(from)
			if err != nil {
				return err
			}
			toDate, err := parseDateFlag(to)
			if err != nil {
				return err
			}

			req := app.ScheduleRequest{Now: now, From: fromDate, To: toDate}
			resp, err := a.Schedule.GetSchedule(context.Background(), req)
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := exportSchedule(resp, outPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d session(s) to %s\n", len(resp.Sessions), outPath)
				return nil
			}

			if jsonMode {
				data, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			today := resp.From
			if now != nil {
				today = now.Format("2006-01-02")
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSchedule(resp, today))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date)
	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, default end of window)")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Emit the schedule as JSON")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the schedule JSON to a file")

	return cmd
}

// exportSchedule writes the schedule JSON via a temp file and rename so a
// concurrent reader never sees a torn export.
func exportSchedule(resp *app.ScheduleResponse, path string) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling schedule: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pacer-export-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing export: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("publishing export: %w", err)
	}
	return nil
}
