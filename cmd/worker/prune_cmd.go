package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/retention"
)

func newPruneHistoryCmd(w *worker) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune-history",
		Short: "Delete chat turns older than --days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive, got %d", days)
			}
			ctx := cmd.Context()

			app, err := w.openApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			n, err := retention.NewScheduler(app.Stores.Chats, days, "", w.log).RunOnce(ctx)
			if err != nil {
				return fmt.Errorf("pruning chat history: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d chat turns older than %d days\n",
				w.paint(styleBold, "Removed"), n, days)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "retention window in days")
	_ = cmd.MarkFlagRequired("days")
	return cmd
}
