package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/dispatch"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/synth"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/projects"
)

func newBlueprintCmd(w *worker) *cobra.Command {
	var (
		userID  int64
		persist bool
	)

	cmd := &cobra.Command{
		Use:   "blueprint PROMPT...",
		Short: "Run a prompt through the chat dispatcher",
		Long: "Run a prompt through the chat dispatcher and print the reply.\n" +
			"Without --persist the project is kept in memory and discarded.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prompt := strings.Join(args, " ")

			var reply domain.Reply
			if persist {
				app, err := w.openApp(ctx)
				if err != nil {
					return err
				}
				defer app.Close()

				turn, err := app.Chat.PostMessage(ctx, userID, prompt)
				if turn == nil {
					return err
				}
				if err != nil {
					w.log.Warn("chat turn not saved", "error", err)
				}
				reply = turn.Reply
			} else {
				reply = dispatch.New(synth.New(projects.NewMemoryStore())).Handle(ctx, prompt, userID)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, reply.Text)
			if reply.Degraded() {
				return fmt.Errorf("blueprint creation failed: %w", reply.Err)
			}
			if reply.Project != nil {
				status := "dry run, not saved"
				if persist {
					status = fmt.Sprintf("saved for user %d", userID)
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, w.paint(styleYellow, status))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user-id", 0, "owner of the created project")
	cmd.Flags().BoolVar(&persist, "persist", false, "save the project and chat turn to the configured database")
	return cmd
}
