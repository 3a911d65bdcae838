package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/evadimova/skhole/internal/cli/formatter"
	"github.com/evadimova/skhole/internal/domain"
)

// skholeHuhTheme styles huh forms with the formatter palette.
func skholeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
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
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateOptionalPositiveInt accepts empty or a positive integer.
func validateOptionalPositiveInt(s string) error {
	if s == "" {
		return nil
	}
	return validatePositiveInt(s)
}

// subjectForm collects a subject's name and deadline interactively.
func subjectForm(name, deadline *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject Name").
				Placeholder("Linear Algebra").
				Value(name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Placeholder("2026-12-15").
				Value(deadline).
				Validate(validateDate),
		),
	).WithTheme(skholeHuhTheme()).WithShowHelp(false)
}

// taskForm collects a task's description, unit, amount, and optional
// estimate interactively.
func taskForm(description, unit, amount, estimate *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.ValidUnits))
	for _, u := range []domain.Unit{domain.UnitPages, domain.UnitExercises, domain.UnitVideoMin} {
		options = append(options, huh.NewOption(u.Label(), string(u)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task Description").
				Placeholder("Read chapter 3").
				Value(description).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Workload Unit").
				Options(options...).
				Value(unit),
			huh.NewInput().
				Title("Amount").
				Placeholder("30").
				Value(amount).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Estimated Minutes (blank to estimate from history)").
				Placeholder("90").
				Value(estimate).
				Validate(validateOptionalPositiveInt),
		),
	).WithTheme(skholeHuhTheme()).WithShowHelp(false)
}

// logForm collects a session's actual results interactively.
func logForm(minutes, amount, rating *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes Spent").
				Placeholder("60").
				Value(minutes).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Amount Completed").
				Placeholder("20").
				Value(amount).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Rating 1-5 (optional)").
				Placeholder("4").
				Value(rating).
				Validate(validateOptionalPositiveInt),
		),
	).WithTheme(skholeHuhTheme()).WithShowHelp(false)
}
