package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evadimova/skhole/internal/cli/formatter"
	"github.com/evadimova/skhole/internal/contract"
	"github.com/evadimova/skhole/internal/service"
	"github.com/spf13/cobra"
)

func newDaemonCmd(app *App) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the daily maintenance loop",
		Long: `Stays in the foreground and, every morning at the configured time,
sweeps missed sessions onto today, plans any unscheduled tasks, and prints
catch-up suggestions for subjects that fell behind.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if at == "" {
				at = os.Getenv("SKHOLE_DAILY_AT")
			}
			if at == "" {
				at = "06:00"
			}

			sched := service.NewDailyScheduler(time.Local)
			if _, err := sched.ScheduleDaily(at, func() { runDailyMaintenance(app) }); err != nil {
				return err
			}

			fmt.Printf("Daemon running; daily maintenance at %s. Ctrl-C to stop.\n", at)
			sched.Start()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop

			sched.Stop()
			fmt.Println("Daemon stopped.")
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Daily run time (HH:MM, default 06:00 or $SKHOLE_DAILY_AT)")

	return cmd
}

func runDailyMaintenance(app *App) {
	ctx := context.Background()
	stamp := time.Now().Format("2006-01-02 15:04")

	resched, err := app.Reschedule.RescheduleMissed(ctx, contract.RescheduleRequest{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "[%s] reschedule failed: %v\n", stamp, err)
	} else if resched.RescheduledCount > 0 {
		fmt.Printf("[%s] %s\n", stamp, formatter.FormatReschedule(resched))
	}

	plan, err := app.Plan.AutoPlan(ctx, contract.PlanRequest{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "[%s] planning failed: %v\n", stamp, err)
	} else if plan.SessionsCreated > 0 {
		fmt.Printf("[%s] %s", stamp, formatter.FormatPlanResult(plan))
	}

	catchup, err := app.CatchUp.Detect(ctx, contract.CatchUpRequest{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "[%s] catch-up detection failed: %v\n", stamp, err)
	} else if len(catchup.Suggestions) > 0 {
		fmt.Printf("[%s] %s\n", stamp, formatter.FormatCatchUp(catchup))
	}
}
