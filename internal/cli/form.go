package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pacerapp/pacer/internal/cli/formatter"
	"github.com/pacerapp/pacer/internal/domain"
)

func pacerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// intakeFormInput collects the raw string answers of the interactive intake
// form before they are parsed into a domain.Intake.
type intakeFormInput struct {
	goals         []string
	milestoneDate string
	days          string
	restDays      string
	maxPerWeek    string
	runFreq       string
	strengthFreq  string
	longestRun    string
	z2Duration    string
	strengthMin   string
	split         string
	level         string
}

func intakeForm(in *intakeFormInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Training goals").
				Options(
					huh.NewOption("Endurance", string(domain.GoalEndurance)),
					huh.NewOption("Strength", string(domain.GoalStrength)),
					huh.NewOption("Body composition", string(domain.GoalBodycomp)),
					huh.NewOption("VO2max", string(domain.GoalVO2Max)),
					huh.NewOption("General fitness", string(domain.GoalGeneral)),
				).
				Value(&in.goals),
			huh.NewInput().
				Title("Race or event date (YYYY-MM-DD, blank for none)").
				Placeholder("2025-06-30").
				Value(&in.milestoneDate).
				Validate(validateOptionalDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Days available (e.g. mon,tue,wed,thu,fri,sat)").
				Value(&in.days).
				Validate(validateWeekdayList),
			huh.NewInput().
				Title("Preferred rest days (e.g. sun)").
				Value(&in.restDays).
				Validate(validateWeekdayList),
			huh.NewInput().
				Title("Max sessions per week (blank for no cap)").
				Value(&in.maxPerWeek).
				Validate(validateOptionalPositiveInt),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Endurance sessions per week").
				Placeholder("3").
				Value(&in.runFreq).
				Validate(validateOptionalPositiveInt),
			huh.NewInput().
				Title("Strength sessions per week").
				Placeholder("2").
				Value(&in.strengthFreq).
				Validate(validateOptionalPositiveInt),
			huh.NewInput().
				Title("Longest recent run (minutes)").
				Placeholder("60").
				Value(&in.longestRun).
				Validate(validateOptionalPositiveInt),
			huh.NewInput().
				Title("Typical easy session (minutes)").
				Placeholder("45").
				Value(&in.z2Duration).
				Validate(validateOptionalPositiveInt),
			huh.NewInput().
				Title("Typical strength session (minutes)").
				Placeholder("50").
				Value(&in.strengthMin).
				Validate(validateOptionalPositiveInt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Strength split").
				Options(
					huh.NewOption("Full body", string(domain.SplitFullBody)),
					huh.NewOption("Upper/lower", string(domain.SplitUpperLower)),
					huh.NewOption("Push/pull/legs", string(domain.SplitPushPullLegs)),
					huh.NewOption("Bro split", string(domain.SplitBro)),
				).
				Value(&in.split),
			huh.NewSelect[string]().
				Title("Fitness level").
				Options(
					huh.NewOption("Beginner", string(domain.LevelBeginner)),
					huh.NewOption("Intermediate", string(domain.LevelIntermediate)),
					huh.NewOption("Advanced", string(domain.LevelAdvanced)),
				).
				Value(&in.level),
		),
	).WithTheme(pacerHuhTheme()).WithShowHelp(false)
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateOptionalPositiveInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("expected a positive number")
	}
	return nil
}

func validateWeekdayList(s string) error {
	if s == "" {
		return fmt.Errorf("at least one day required")
	}
	_, err := parseWeekdaySet(s)
	return err
}
