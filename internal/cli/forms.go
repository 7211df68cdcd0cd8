package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmalmgren/tempus/internal/cli/formatter"
)

// tempusHuhTheme returns a custom huh theme using the Gruvbox palette.
func tempusHuhTheme() *huh.Theme {
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

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative whole number")
	}
	return nil
}

// taskFormValues holds the string-typed fields bound to the task form.
type taskFormValues struct {
	Description string
	Category    string
	Start       string
	Deadline    string
	Estimated   string
}

// taskForm builds the interactive form used by "task add" and "task update"
// when flags are omitted. The values struct doubles as the pre-fill source.
func taskForm(v *taskFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Placeholder("write essay").
				Value(&v.Description).
				Validate(validateRequired),
			huh.NewInput().
				Title("Category").
				Placeholder("studies").
				Value(&v.Category).
				Validate(validateRequired),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Placeholder("2025-06-02").
				Value(&v.Start).
				Validate(validateDate),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Placeholder("2025-06-06").
				Value(&v.Deadline).
				Validate(validateDate),
			huh.NewInput().
				Title("Estimated hours").
				Placeholder("8").
				Value(&v.Estimated).
				Validate(validateNonNegativeInt),
		),
	).WithTheme(tempusHuhTheme()).WithShowHelp(false)
}

// availabilityFormValues holds one string per weekday for the profile form.
type availabilityFormValues struct {
	Days [7]string // Monday first
}

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// availabilityForm builds the weekly-hours form used by "avail set".
func availabilityForm(v *availabilityFormValues) *huh.Form {
	fields := make([]huh.Field, 0, 7)
	for i := range v.Days {
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("%s hours", weekdayNames[i])).
			Placeholder("8").
			Value(&v.Days[i]).
			Validate(validateDayHours))
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(tempusHuhTheme()).
		WithShowHelp(false)
}

func validateDayHours(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 24 {
		return fmt.Errorf("must be 0-24")
	}
	return nil
}
