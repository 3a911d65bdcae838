package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/evadimova/skhole/internal/cli/formatter"
	"github.com/evadimova/skhole/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change planning preferences",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func blockedNames(blocked map[time.Weekday]bool) string {
	var days []int
	for d, b := range blocked {
		if b {
			days = append(days, int(d))
		}
	}
	if len(days) == 0 {
		return "none"
	}
	sort.Ints(days)
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = time.Weekday(d).String()
	}
	return strings.Join(names, ", ")
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Daily capacity:  %s\n", formatter.FormatMinutes(settings.DailyCapacityMin))
			fmt.Printf("Blocked days:    %s\n", blockedNames(settings.BlockedWeekdays))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var capacity int
	var blocked []string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change daily capacity or blocked weekdays",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("capacity") {
				settings.DailyCapacityMin = capacity
			}
			if cmd.Flags().Changed("blocked") {
				days := make(map[time.Weekday]bool)
				for _, name := range blocked {
					d, err := domain.ParseWeekdayName(name)
					if err != nil {
						return err
					}
					days[d] = true
				}
				settings.BlockedWeekdays = days
			}

			if err := app.Settings.Update(ctx, settings); err != nil {
				return err
			}
			fmt.Println("Settings updated. Future planning runs use the new values.")
			return nil
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 0, "Daily study capacity in minutes")
	cmd.Flags().StringSliceVar(&blocked, "blocked", nil, "Blocked weekdays, e.g. --blocked sun,sat (empty clears)")

	return cmd
}
