package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/evadimova/skhole/internal/cli/formatter"
	"github.com/evadimova/skhole/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage study tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskScopeCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
		newTaskEstimateCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var subjectInput, description, unitStr string
	var amount, estimate int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			subjectID, err := resolveSubjectID(ctx, app, subjectInput)
			if err != nil {
				return err
			}

			if description == "" && app.interactive() {
				unitStr = string(domain.UnitPages)
				var amountStr, estimateStr string
				if err := taskForm(&description, &unitStr, &amountStr, &estimateStr).Run(); err != nil {
					return err
				}
				if amount, err = strconv.Atoi(amountStr); err != nil {
					return fmt.Errorf("invalid amount %q", amountStr)
				}
				if estimateStr != "" {
					if estimate, err = strconv.Atoi(estimateStr); err != nil {
						return fmt.Errorf("invalid estimate %q", estimateStr)
					}
				}
			}

			unit := domain.Unit(unitStr)

			// No explicit estimate: derive one from recorded history,
			// falling back to the per-unit defaults.
			estimated := estimate
			if estimated == 0 {
				estimated, err = app.Tasks.EstimateMinutes(ctx, unit, amount)
				if err != nil {
					return err
				}
				fmt.Printf("Estimated duration: %s\n", formatter.FormatMinutes(estimated))
			}

			task := &domain.StudyTask{
				SubjectID:    subjectID,
				Description:  description,
				Unit:         unit,
				Amount:       amount,
				EstimatedMin: estimated,
			}
			if err := app.Tasks.Create(ctx, task); err != nil {
				return err
			}

			fmt.Printf("Added task %q (%s, %s)\n",
				task.Description,
				formatter.FormatWorkload(task.Amount, task.Unit),
				formatter.FormatMinutes(task.EstimatedMin))
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectInput, "subject", "", "Subject ID (or unique prefix)")
	cmd.Flags().StringVar(&description, "desc", "", "Task description")
	cmd.Flags().StringVar(&unitStr, "unit", string(domain.UnitPages), "Workload unit: pages, exercises, video_min")
	cmd.Flags().IntVar(&amount, "amount", 0, "Total workload in the chosen unit")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimated total minutes (0 = derive from history)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var subjectInput string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var tasks []*domain.StudyTask
			var err error
			if subjectInput != "" {
				subjectID, rerr := resolveSubjectID(ctx, app, subjectInput)
				if rerr != nil {
					return rerr
				}
				tasks, err = app.Tasks.ListBySubject(ctx, subjectID)
			} else {
				tasks, err = app.Tasks.ListAll(ctx)
			}
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}
			fmt.Print(formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectInput, "subject", "", "Limit to one subject")

	return cmd
}

func newTaskScopeCmd(app *App) *cobra.Command {
	var amount, estimate int

	cmd := &cobra.Command{
		Use:   "scope <id>",
		Short: "Change a task's workload; its sessions are replanned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Tasks.UpdateScope(ctx, id, amount, estimate); err != nil {
				return err
			}
			fmt.Println("Scope updated; existing sessions dropped. Run 'skhole plan' to reschedule.")
			return nil
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "New total workload")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "New estimated total minutes")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("estimate")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.SetCompleted(ctx, id, !undo); err != nil {
				return err
			}
			if undo {
				fmt.Println("Task reopened.")
			} else {
				fmt.Println("Task completed.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Reopen instead of complete")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a task and its sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Task removed.")
			return nil
		},
	}
}

func newTaskEstimateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate <unit> <amount>",
		Short: "Predict minutes for a workload from your recorded pace",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			minutes, err := app.Tasks.EstimateMinutes(context.Background(), domain.Unit(args[0]), amount)
			if err != nil {
				return err
			}

			fmt.Printf("%s of %s ≈ %s\n",
				args[1], domain.Unit(args[0]).Label(), formatter.FormatMinutes(minutes))
			return nil
		},
	}

	return cmd
}
