package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pacerapp/pacer/internal/cli/formatter"
	"github.com/pacerapp/pacer/internal/domain"
	"github.com/pacerapp/pacer/internal/repository"
	"github.com/spf13/cobra"
)

func newIntakeCmd(a *App) *cobra.Command {
	var in intakeFormInput
	var goals string

	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Declare goals, constraints and baseline",
		Long: "Replaces the stored intake in one pass. Runs an interactive form " +
			"on a terminal; pass flags for scripted use.",
		RunE: func(cmd *cobra.Command, args []string) error {
			flagged := cmd.Flags().NFlag() > 0
			if flagged {
				in.goals = splitList(goals)
			} else {
				if a.IsInteractive == nil || !a.IsInteractive() {
					return fmt.Errorf("no terminal detected; pass --goals, --days and --rest-days")
				}
				if err := intakeForm(&in).Run(); err != nil {
					return err
				}
			}

			intake, err := buildIntake(&in)
			if err != nil {
				return err
			}

			if err := a.Intake.SaveIntake(context.Background(), intake); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Intake saved. Run "+formatter.Bold("pacer plan")+" to build a schedule.")
			return nil
		},
	}

	cmd.Flags().StringVar(&goals, "goals", "", "Goal kinds, e.g. endurance,strength")
	cmd.Flags().StringVar(&in.milestoneDate, "milestone", "", "Race/event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.days, "days", "", "Days available, e.g. mon,tue,wed,thu,fri,sat")
	cmd.Flags().StringVar(&in.restDays, "rest-days", "", "Preferred rest days, e.g. sun")
	cmd.Flags().StringVar(&in.maxPerWeek, "max-week", "", "Max sessions per week")
	cmd.Flags().StringVar(&in.runFreq, "run-freq", "", "Endurance sessions per week")
	cmd.Flags().StringVar(&in.strengthFreq, "strength-freq", "", "Strength sessions per week")
	cmd.Flags().StringVar(&in.longestRun, "longest-run", "", "Longest recent run in minutes")
	cmd.Flags().StringVar(&in.z2Duration, "z2", "", "Typical easy session in minutes")
	cmd.Flags().StringVar(&in.strengthMin, "strength-min", "", "Typical strength session in minutes")
	cmd.Flags().StringVar(&in.split, "split", "", "Strength split: full_body, upper_lower, push_pull_legs, bro_split")
	cmd.Flags().StringVar(&in.level, "level", "", "Fitness level: beginner, intermediate, advanced")

	cmd.AddCommand(newIntakeShowCmd(a))

	return cmd
}

// buildIntake parses the collected answers into a domain intake. Structural
// validation (disjoint day sets etc.) stays in the service.
func buildIntake(in *intakeFormInput) (*domain.Intake, error) {
	days, err := parseWeekdaySet(in.days)
	if err != nil {
		return nil, err
	}
	rest, err := parseWeekdaySet(in.restDays)
	if err != nil {
		return nil, err
	}

	intake := &domain.Intake{
		Constraints: domain.Constraints{
			DaysAvailable:     days,
			PreferredRestDays: rest,
		},
	}

	for i, g := range in.goals {
		kind := domain.GoalKind(strings.TrimSpace(g))
		intake.Goals = append(intake.Goals, domain.Goal{Kind: kind, Priority: i + 1})
	}

	if in.milestoneDate != "" {
		date, err := domain.ParseDate(in.milestoneDate)
		if err != nil {
			return nil, fmt.Errorf("invalid milestone date %q: expected YYYY-MM-DD", in.milestoneDate)
		}
		intake.Milestones = append(intake.Milestones, domain.Milestone{
			Kind: domain.GoalEndurance, Date: date, Priority: 1,
		})
	}

	if in.maxPerWeek != "" {
		n, err := strconv.Atoi(in.maxPerWeek)
		if err != nil {
			return nil, fmt.Errorf("invalid max-week %q", in.maxPerWeek)
		}
		intake.Constraints.MaxSessionsPerWeek = &n
	}

	b := &intake.Baseline
	if b.RunFrequencyPerWeek, err = optionalInt(in.runFreq); err != nil {
		return nil, err
	}
	if b.StrengthFrequencyPerWeek, err = optionalInt(in.strengthFreq); err != nil {
		return nil, err
	}
	if b.LongestRunMin, err = optionalInt(in.longestRun); err != nil {
		return nil, err
	}
	if b.Z2DurationMin, err = optionalInt(in.z2Duration); err != nil {
		return nil, err
	}
	if b.StrengthSessionMin, err = optionalInt(in.strengthMin); err != nil {
		return nil, err
	}
	if in.split != "" {
		if !domain.ValidStrengthSplits[in.split] {
			return nil, fmt.Errorf("unknown split %q", in.split)
		}
		b.StrengthSplit = domain.StrengthSplit(in.split)
	}
	if in.level != "" {
		b.FitnessLevel = domain.FitnessLevel(in.level)
	}

	return intake, nil
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return n, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func newIntakeShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored intake",
		RunE: func(cmd *cobra.Command, args []string) error {
			intake, err := a.Intake.GetIntake(context.Background())
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No intake on file. Run pacer intake first."))
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Goals"))
			for _, g := range intake.Goals {
				fmt.Fprintf(out, "  %d. %s\n", g.Priority, g.Kind)
			}
			for _, m := range intake.Milestones {
				fmt.Fprintf(out, "  Milestone: %s on %s\n", m.Kind, domain.FormatDate(m.Date))
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Header("Constraints"))
			fmt.Fprintf(out, "  Available: %s\n", weekdaySetString(intake.Constraints.DaysAvailable))
			fmt.Fprintf(out, "  Rest:      %s\n", weekdaySetString(intake.Constraints.PreferredRestDays))
			if intake.Constraints.MaxSessionsPerWeek != nil {
				fmt.Fprintf(out, "  Max/week:  %d\n", *intake.Constraints.MaxSessionsPerWeek)
			}
			for _, fa := range intake.Constraints.FixedAppointments {
				fmt.Fprintf(out, "  Blocked:   %s %s\n", fa.Weekday, fa.TimeWindow)
			}

			b := intake.Baseline
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Header("Baseline"))
			fmt.Fprintf(out, "  Endurance %d/wk, strength %d/wk (%s, %s)\n",
				b.RunFrequencyPerWeek, b.StrengthFrequencyPerWeek, b.StrengthSplit, b.FitnessLevel)
			fmt.Fprintf(out, "  Longest run %s, easy %s, strength %s\n",
				formatter.FormatMinutes(b.LongestRunMin),
				formatter.FormatMinutes(b.Z2DurationMin),
				formatter.FormatMinutes(b.StrengthSessionMin))

			return nil
		},
	}
}

func weekdaySetString(set map[time.Weekday]bool) string {
	var names []string
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if set[wd] {
			names = append(names, formatter.WeekdayShort(wd.String()))
		}
	}
	if len(names) == 0 {
		return "--"
	}
	return strings.Join(names, ", ")
}
