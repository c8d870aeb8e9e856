package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayweave/internal/cli/formatter"
)

func newStatusCmd(a *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show learning phase and category friction",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Status.GetStatus(context.Background(), userID)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatStatus(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
