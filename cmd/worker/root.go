package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/bootstrap"
)

// worker carries what the commands share. openApp is only called by commands
// that touch the database.
type worker struct {
	log     *slog.Logger
	color   bool
	openApp func(ctx context.Context) (*bootstrap.App, error)
}

func newRootCmd(w *worker) *cobra.Command {
	root := &cobra.Command{
		Use:           "worker",
		Short:         "Offline tools for the project architect",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newClassifyCmd(w),
		newBlueprintCmd(w),
		newTemplatesCmd(w),
		newPruneHistoryCmd(w),
	)
	return root
}
