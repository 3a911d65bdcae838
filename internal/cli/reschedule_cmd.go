package cli

import (
	"context"
	"fmt"

	"github.com/evadimova/skhole/internal/cli/formatter"
	"github.com/evadimova/skhole/internal/contract"
	"github.com/spf13/cobra"
)

func newRescheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reschedule",
		Short: "Move missed sessions onto today",
		Long: `Sweeps sessions that were placed on the calendar, not completed, and
dated before today into today's holding pool. The daemon runs this sweep
automatically every morning.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Reschedule.RescheduleMissed(context.Background(), contract.RescheduleRequest{})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatReschedule(resp))
			return nil
		},
	}
}
