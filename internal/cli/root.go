package cli

import (
	"github.com/spf13/cobra"

	"github.com/martinhruska/scopeburn/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects    service.ProjectService
	Team        service.TeamService
	Assignments service.AssignmentService
	Workflows   service.WorkflowService
	Settings    service.SettingsService
	Forecast    service.ForecastService
	Import      service.ImportService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and the board TUI refuse to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "scopeburn" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "scopeburn",
		Short: "Delivery forecasting for a multi-project scope",
	}

	root.AddCommand(
		newProjectCmd(app),
		newMemberCmd(app),
		newAssignCmd(app),
		newWorkflowCmd(app),
		newForecastCmd(app),
		newTimelineCmd(app),
		newSlipCmd(app),
		newSettingsCmd(app),
		newImportCmd(app),
		newBoardCmd(app),
	)

	return root
}
