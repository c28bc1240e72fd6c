package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/pacerapp/pacer/internal/cli/formatter"
	"github.com/pacerapp/pacer/internal/domain"
	"github.com/pacerapp/pacer/internal/repository"
	"github.com/spf13/cobra"
)

func newAbsenceCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "absence",
		Short: "Manage the illness/travel/injury window",
	}

	cmd.AddCommand(
		newAbsenceSetCmd(a),
		newAbsenceClearCmd(a),
		newAbsenceShowCmd(a),
	)

	return cmd
}

func newAbsenceSetCmd(a *App) *cobra.Command {
	var (
		kind  string
		since string
		until string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Declare a status window that blocks training days",
		RunE: func(cmd *cobra.Command, args []string) error {
			untilDate, err := domain.ParseDate(until)
			if err != nil {
				return fmt.Errorf("invalid until date %q: expected YYYY-MM-DD", until)
			}

			w := domain.StatusWindow{Kind: domain.StatusKind(kind), Until: untilDate}
			if since != "" {
				sinceDate, err := domain.ParseDate(since)
				if err != nil {
					return fmt.Errorf("invalid since date %q: expected YYYY-MM-DD", since)
				}
				w.Since = &sinceDate
			}

			if err := a.Absence.SetAbsence(context.Background(), w); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Away (%s) through %s\n", kind, domain.FormatDate(untilDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Window kind: illness, travel or injury")
	cmd.Flags().StringVar(&since, "since", "", "Window start (YYYY-MM-DD, open when omitted)")
	cmd.Flags().StringVar(&until, "until", "", "Window end, inclusive (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("until")

	return cmd
}

func newAbsenceClearCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the active status window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Absence.ClearAbsence(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Status window cleared")
			return nil
		},
	}
}

func newAbsenceShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active status window",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.Absence.GetAbsence(context.Background())
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No status window set."))
				return nil
			}
			if err != nil {
				return err
			}

			since := "open start"
			if w.Since != nil {
				since = domain.FormatDate(*w.Since)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s through %s\n", w.Kind, since, domain.FormatDate(w.Until))
			return nil
		},
	}
}
