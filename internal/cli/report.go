package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhuels/starrecap/pkg/report"
	"github.com/mhuels/starrecap/pkg/snapshot"
)

// reportCommand creates the report command for re-rendering an existing
// snapshot without touching the network.
func (c *CLI) reportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report <snapshot.json>",
		Short: "Render the recap from a previously exported snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := snapshot.Read(args[0])
			if err != nil {
				return err
			}

			c.Logger.Debug("loaded snapshot", "path", args[0], "repos", doc.TotalCount)

			out := cmd.OutOrStdout()
			for _, line := range report.Render(doc) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
