package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmalmgren/tempus/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks        service.TaskService
	Categories   service.CategoryService
	Availability service.AvailabilityService
	Timeline     service.TimelineService
	Import       service.ImportService

	// IsInteractive reports whether stdin is a terminal; commands fall back
	// to huh forms for missing input only when it returns true.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "tempus" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempus",
		Short: "Deadline-aware personal task tracker",
	}

	root.AddCommand(
		newTaskCmd(app),
		newCategoryCmd(app),
		newAvailCmd(app),
		newTimelineCmd(app),
		newImportCmd(app),
	)

	return root
}
