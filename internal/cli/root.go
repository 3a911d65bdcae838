package cli

import (
	"github.com/evadimova/skhole/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Subjects   service.SubjectService
	Tasks      service.TaskService
	Sessions   service.SessionService
	Plan       service.PlanService
	CatchUp    service.CatchUpService
	Reschedule service.RescheduleService
	Status     service.StatusService
	Settings   service.SettingsService
	Import     service.ImportService

	// IsInteractive reports whether stdin is a terminal; interactive
	// prompts are skipped when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "skhole" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "skhole",
		Short: "Study planner: schedules tasks into daily sessions and keeps the plan honest",
	}

	root.AddCommand(
		newSubjectCmd(app),
		newTaskCmd(app),
		newSessionCmd(app),
		newPlanCmd(app),
		newCatchUpCmd(app),
		newRescheduleCmd(app),
		newStatusCmd(app),
		newSettingsCmd(app),
		newDaemonCmd(app),
	)

	return root
}
