package cli

import (
	"context"
	"fmt"

	"github.com/evadimova/skhole/internal/cli/formatter"
	"github.com/evadimova/skhole/internal/contract"
	"github.com/spf13/cobra"
)

func newCatchUpCmd(app *App) *cobra.Command {
	var accept int

	cmd := &cobra.Command{
		Use:   "catchup",
		Short: "Detect subjects behind plan and propose extra sessions",
		Long: `Compares each subject's measured pace against its planned pace. Subjects
running measurably slow get extra sessions proposed on otherwise free days.
Nothing is scheduled until a suggestion is accepted with --accept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := app.CatchUp.Detect(ctx, contract.CatchUpRequest{})
			if err != nil {
				return err
			}

			if accept == 0 {
				fmt.Println(formatter.FormatCatchUp(resp))
				return nil
			}

			if accept < 1 || accept > len(resp.Suggestions) {
				return fmt.Errorf("no suggestion #%d: %d available", accept, len(resp.Suggestions))
			}

			sug := resp.Suggestions[accept-1]
			created, err := app.CatchUp.Accept(ctx, sug)
			if err != nil {
				return err
			}
			fmt.Printf("Scheduled %d catch-up session(s) for %s.\n", created, sug.SubjectName)
			return nil
		},
	}

	cmd.Flags().IntVar(&accept, "accept", 0, "Accept suggestion number n from the current detection")

	return cmd
}
