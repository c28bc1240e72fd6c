package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pacerapp/pacer/internal/domain"
	"github.com/spf13/cobra"
)

func newReadinessCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Record daily readiness scores",
	}

	cmd.AddCommand(newReadinessLogCmd(a))

	return cmd
}

func newReadinessLogCmd(a *App) *cobra.Command {
	var (
		date         string
		score        int
		insufficient bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a readiness score for a date",
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

			s := domain.ReadinessScore{Date: day, Score: score, Quality: domain.ReadinessOK}
			if insufficient {
				s.Quality = domain.ReadinessInsufficient
			}

			if err := a.Readiness.RecordReadiness(context.Background(), s); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Readiness %d/100 recorded for %s\n", score, domain.FormatDate(day))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Score date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&score, "score", 0, "Readiness score 0-100")
	cmd.Flags().BoolVar(&insufficient, "insufficient", false, "Mark the score as low-signal")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}
