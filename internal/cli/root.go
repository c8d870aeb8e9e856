package cli

import (
	"github.com/alexanderramin/dayweave/internal/oracle"
	"github.com/alexanderramin/dayweave/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Assemble service.AssembleService
	Feedback service.FeedbackService
	Status   service.StatusService
	Catalog  service.CatalogService

	// Oracle is nil when skeleton generation is disabled; plan assembly then
	// requires an explicit skeleton file.
	Oracle oracle.PlanOracle

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "dayweave" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dayweave",
		Short: "Adaptive daily plan personalization",
	}

	root.AddCommand(
		newPlanCmd(app),
		newFeedbackCmd(app),
		newStatusCmd(app),
		newCatalogCmd(app),
	)

	return root
}
