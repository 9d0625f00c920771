package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/catalogue"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/compose"
)

func newTemplatesCmd(w *worker) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List project templates and example prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			var rows [][]string
			for _, t := range catalogue.Types() {
				tpl := catalogue.Lookup(t)
				rows = append(rows, []string{
					compose.TypeLabel(t),
					string(tpl.Complexity),
					tpl.Timeline,
					strconv.Itoa(len(tpl.Features)),
				})
			}
			fmt.Fprint(out, w.renderTable([]string{"Type", "Complexity", "Timeline", "Features"}, rows))

			fmt.Fprintln(out)
			fmt.Fprintln(out, w.paint(styleHeader, "How to create projects"))
			for _, p := range catalogue.ExamplePrompts() {
				fmt.Fprintf(out, "  • %s\n", p)
			}
			return nil
		},
	}
}
