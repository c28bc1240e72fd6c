package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pacerapp/pacer/internal/cli/formatter"
	"github.com/pacerapp/pacer/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkoutCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Record and list actual workouts",
	}

	cmd.AddCommand(
		newWorkoutLogCmd(a),
		newWorkoutListCmd(a),
	)

	return cmd
}

func newWorkoutLogCmd(a *App) *cobra.Command {
	var (
		date     string
		workType string
		minutes  int
		effort   float64
		zones    string
		note     string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a completed workout",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().UTC()
			if date != "" {
				parsed, err := domain.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
				}
				day = parsed
			} else {
				day = domain.NewDate(day.Year(), day.Month(), day.Day())
			}

			w := &domain.Workout{
				Date:        day,
				Type:        workType,
				DurationMin: minutes,
				Note:        note,
			}
			if cmd.Flags().Changed("effort") {
				w.EffortScore = &effort
			}
			if zones != "" {
				zm, err := parseZoneMinutes(zones)
				if err != nil {
					return err
				}
				w.ZoneMinutes = zm
				w.HasZones = true
			}

			if err := a.Workouts.LogWorkout(context.Background(), w); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s, %s on %s\n",
				workType, formatter.FormatMinutes(minutes), domain.FormatDate(day))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Workout date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&workType, "type", "", "Activity type, e.g. run, tempo, strength")
	cmd.Flags().IntVar(&minutes, "min", 0, "Duration in minutes")
	cmd.Flags().Float64Var(&effort, "effort", 0, "Perceived effort 0-10")
	cmd.Flags().StringVar(&zones, "zones", "", "HR zone minutes z1..z5, e.g. 5,10,20,10,0")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("min")

	return cmd
}

func newWorkoutListCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recently logged workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			workouts, err := a.Workouts.ListWorkouts(context.Background(), limit)
			if err != nil {
				return err
			}

			if len(workouts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No workouts logged yet."))
				return nil
			}

			headers := []string{"DATE", "TYPE", "DURATION", "EFFORT", "NOTE"}
			rows := make([][]string, 0, len(workouts))
			for _, w := range workouts {
				effort := formatter.Dim("--")
				if w.EffortScore != nil {
					effort = fmt.Sprintf("%.1f", *w.EffortScore)
				}
				rows = append(rows, []string{
					domain.FormatDate(w.Date),
					formatter.Bold(w.Type),
					formatter.FormatMinutes(w.DurationMin),
					effort,
					w.Note,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of workouts to show")

	return cmd
}

func parseZoneMinutes(value string) ([domain.ZoneCount]int, error) {
	var zm [domain.ZoneCount]int
	parts := strings.Split(value, ",")
	if len(parts) != domain.ZoneCount {
		return zm, fmt.Errorf("zones needs %d comma-separated values, got %d", domain.ZoneCount, len(parts))
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return zm, fmt.Errorf("invalid zone minutes %q", p)
		}
		zm[i] = n
	}
	return zm, nil
}
