package cli

import (
	"context"
	"fmt"

	"github.com/evadimova/skhole/internal/cli/formatter"
	"github.com/evadimova/skhole/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Schedule sessions for every unplanned task",
		Long: `Splits each incomplete, unscheduled task into sessions spread evenly
across the study days remaining before its subject's deadline. Tasks that
already have sessions are left untouched, so running it again is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Plan.AutoPlan(context.Background(), contract.PlanRequest{})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPlanResult(resp))
			return nil
		},
	}
}
