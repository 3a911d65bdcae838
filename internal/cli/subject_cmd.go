package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/evadimova/skhole/internal/cli/formatter"
	"github.com/evadimova/skhole/internal/domain"
	"github.com/spf13/cobra"
)

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage subjects",
	}

	cmd.AddCommand(
		newSubjectAddCmd(app),
		newSubjectListCmd(app),
		newSubjectInspectCmd(app),
		newSubjectUpdateCmd(app),
		newSubjectRemoveCmd(app),
		newSubjectImportCmd(app),
	)

	return cmd
}

func newSubjectAddCmd(app *App) *cobra.Command {
	var name, deadline string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (name == "" || deadline == "") && app.interactive() {
				if err := subjectForm(&name, &deadline).Run(); err != nil {
					return err
				}
			}

			deadlineDate, err := time.Parse(domain.DateLayout, deadline)
			if err != nil {
				return fmt.Errorf("invalid deadline %q: %w", deadline, err)
			}

			subj := &domain.Subject{
				Name:     name,
				Deadline: deadlineDate,
			}
			if err := app.Subjects.Create(context.Background(), subj); err != nil {
				return err
			}

			fmt.Printf("Created subject %s (deadline %s)\n", subj.Name, deadline)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Subject name")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")

	return cmd
}

func newSubjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := app.Subjects.List(context.Background())
			if err != nil {
				return err
			}
			if len(subjects) == 0 {
				fmt.Println("No subjects found.")
				return nil
			}
			fmt.Print(formatter.FormatSubjectList(subjects))
			return nil
		},
	}
}

func newSubjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Show a subject and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSubjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			subj, err := app.Subjects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListBySubject(ctx, id)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSubjectDetail(subj, tasks))
			return nil
		},
	}
}

func newSubjectUpdateCmd(app *App) *cobra.Command {
	var name, deadline string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a subject's name or deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSubjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			subj, err := app.Subjects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if name != "" {
				subj.Name = name
			}
			if deadline != "" {
				d, err := time.Parse(domain.DateLayout, deadline)
				if err != nil {
					return fmt.Errorf("invalid deadline %q: %w", deadline, err)
				}
				subj.Deadline = d
			}

			if err := app.Subjects.Update(ctx, subj); err != nil {
				return err
			}
			fmt.Printf("Updated subject %s\n", subj.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&deadline, "deadline", "", "New deadline (YYYY-MM-DD)")

	return cmd
}

func newSubjectImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a subject and its tasks from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subj, taskCount, err := app.Import.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported subject %s with %d task(s). Run 'skhole plan' to schedule them.\n",
				subj.Name, taskCount)
			return nil
		},
	}
}

func newSubjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a subject and everything scheduled for it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSubjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Subjects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Subject removed.")
			return nil
		},
	}
}
