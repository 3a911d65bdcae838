package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/evadimova/skhole/internal/cli/formatter"
	"github.com/evadimova/skhole/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage planned sessions",
	}

	cmd.AddCommand(
		newSessionListCmd(app),
		newSessionLogCmd(app),
		newSessionMoveCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func subjectNameIndex(ctx context.Context, app *App) (map[string]string, error) {
	subjects, err := app.Subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(subjects))
	for _, s := range subjects {
		names[s.ID] = s.Name
	}
	return names, nil
}

func newSessionListCmd(app *App) *cobra.Command {
	var subjectInput string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the session agenda",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var sessions []*domain.PlannedSession
			var err error
			if subjectInput != "" {
				subjectID, rerr := resolveSubjectID(ctx, app, subjectInput)
				if rerr != nil {
					return rerr
				}
				sessions, err = app.Sessions.ListBySubject(ctx, subjectID)
			} else {
				sessions, err = app.Sessions.ListAll(ctx)
			}
			if err != nil {
				return err
			}

			names, err := subjectNameIndex(ctx, app)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatSessionList(sessions, names))
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectInput, "subject", "", "Limit to one subject")

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var minutes, amount, rating int

	cmd := &cobra.Command{
		Use:   "log <id>",
		Short: "Record a session's actual results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if minutes == 0 && app.interactive() {
				var minStr, amtStr, ratingStr string
				if err := logForm(&minStr, &amtStr, &ratingStr).Run(); err != nil {
					return err
				}
				if minutes, err = strconv.Atoi(minStr); err != nil {
					return fmt.Errorf("invalid minutes %q", minStr)
				}
				if amount, err = strconv.Atoi(amtStr); err != nil {
					return fmt.Errorf("invalid amount %q", amtStr)
				}
				if ratingStr != "" {
					if rating, err = strconv.Atoi(ratingStr); err != nil {
						return fmt.Errorf("invalid rating %q", ratingStr)
					}
				}
			}

			var ratingPtr *int
			if rating != 0 {
				ratingPtr = &rating
			}

			if err := app.Sessions.RecordResult(ctx, id, minutes, amount, ratingPtr); err != nil {
				return err
			}
			fmt.Printf("Logged %s for session %s\n", formatter.FormatMinutes(minutes), args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes actually spent")
	cmd.Flags().IntVar(&amount, "amount", 0, "Amount actually completed")
	cmd.Flags().IntVar(&rating, "rating", 0, "Session quality 1-5")

	return cmd
}

func newSessionMoveCmd(app *App) *cobra.Command {
	var date string
	var hour int

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move a session to another date or hour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var hourPtr *int
			if cmd.Flags().Changed("hour") {
				hourPtr = &hour
			}

			if err := app.Sessions.Move(ctx, id, date, hourPtr); err != nil {
				return err
			}
			if hourPtr != nil {
				fmt.Printf("Moved session to %s at %02d:00\n", date, hour)
			} else {
				fmt.Printf("Moved session to %s (holding pool)\n", date)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&hour, "hour", 0, "Hour of day 0-23; omit for the holding pool")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Sessions.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Session removed.")
			return nil
		},
	}
}
