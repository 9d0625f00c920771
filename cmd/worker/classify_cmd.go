package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/classifier"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/dispatch"
)

func newClassifyCmd(w *worker) *cobra.Command {
	return &cobra.Command{
		Use:   "classify PROMPT...",
		Short: "Show how a prompt is classified",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			res := classifier.Score(prompt)
			intent := classifier.AnalyzeIntent(prompt)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Type:       %s\n", w.paint(styleGreen, string(res.Type)))
			fmt.Fprintf(out, "Creation:   %t\n", dispatch.IsProjectCreationRequest(prompt))
			fmt.Fprintf(out, "Complexity: %s\n", intent.Complexity)
			if len(intent.Domains) > 0 {
				fmt.Fprintf(out, "Domains:    %s\n", strings.Join(intent.Domains, ", "))
			}
			fmt.Fprintln(out)

			rows := make([][]string, 0, len(res.Scores))
			for _, s := range res.Scores {
				rows = append(rows, []string{string(s.Type), strconv.Itoa(s.Score)})
			}
			fmt.Fprint(out, w.renderTable([]string{"Type", "Score"}, rows))
			return nil
		},
	}
}
