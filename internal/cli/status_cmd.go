package cli

import (
	"context"
	"fmt"

	"github.com/evadimova/skhole/internal/cli/formatter"
	"github.com/evadimova/skhole/internal/contract"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show per-subject progress and pace",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Status.GetStatus(context.Background(), contract.StatusRequest{})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatStatus(resp))
			return nil
		},
	}
}
