package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/martinhruska/scopeburn/internal/cli/formatter"
	"github.com/martinhruska/scopeburn/internal/domain"
)

// scopeburnHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func scopeburnHuhTheme() *huh.Theme {
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

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateOptionalPositiveInt accepts empty or a positive integer.
func validateOptionalPositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateRoleSpecs accepts empty or a comma-separated list of
// role=planned[:done] specs.
func validateRoleSpecs(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	for _, spec := range strings.Split(s, ",") {
		if _, _, _, err := parseRoleSpec(strings.TrimSpace(spec)); err != nil {
			return fmt.Errorf("use role=planned[:done], comma separated")
		}
	}
	return nil
}

// runProjectWizard collects project details via a huh form and creates the
// project. Only usable on an interactive terminal.
func runProjectWizard(app *App, cmd *cobra.Command) error {
	if app.IsInteractive == nil || !app.IsInteractive() {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	var (
		name      string
		priority  string
		deadline  string
		startDay  string
		roleSpecs string
		start     bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Placeholder("checkout-revamp").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Priority").
				Description("Lower numbers are scheduled earlier").
				Placeholder("100").
				Value(&priority).
				Validate(validateOptionalPositiveInt),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Deadline").
				Placeholder("YYYY-MM-DD (optional)").
				Value(&deadline).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Earliest start day").
				Placeholder("YYYY-MM-DD (optional)").
				Value(&startDay).
				Validate(validateOptionalDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Role plan").
				Description("role=planned[:done], comma separated, e.g. fe=20, be=30:12").
				Value(&roleSpecs).
				Validate(validateRoleSpecs),
			huh.NewConfirm().
				Title("Start the project now?").
				Affirmative("Yes").
				Negative("No").
				Value(&start),
		),
	).WithTheme(scopeburnHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	p := &domain.Project{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(name),
		Priority: 100,
		Status:   domain.ProjectNotStarted,
		Roles:    make(map[string]domain.RoleEffort),
	}
	if priority != "" {
		if v, err := strconv.Atoi(priority); err == nil && v > 0 {
			p.Priority = v
		}
	}
	if deadline != "" {
		d, err := parseDateFlag("deadline", deadline)
		if err != nil {
			return err
		}
		p.Deadline = &d
	}
	if startDay != "" {
		d, err := parseDateFlag("start day", startDay)
		if err != nil {
			return err
		}
		p.StartDay = &d
	}
	if strings.TrimSpace(roleSpecs) != "" {
		for _, spec := range strings.Split(roleSpecs, ",") {
			role, planned, done, err := parseRoleSpec(strings.TrimSpace(spec))
			if err != nil {
				return err
			}
			p.Roles[role] = domain.RoleEffort{PlannedMandays: planned, DoneValue: done}
		}
	}
	if start {
		p.Status = domain.ProjectInProgress
	}

	ctx := context.Background()
	if err := app.Projects.Create(ctx, p); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", p.Name, p.DisplayID())
	return nil
}
