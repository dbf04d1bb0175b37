package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhuels/starrecap/pkg/updater"
)

// updateCommand creates the update command: diff locally installed models
// against the remote catalog and pull whatever is missing.
func (c *CLI) updateCommand() *cobra.Command {
	var opts updater.Options

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Pull models missing locally from the remote catalog",
		Long: `List locally installed models, fetch the remote catalog, and pull each
model the catalog has that the local install does not. When updates are
found, a timestamped line is appended to the update log.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := updater.New(opts, c.Logger)

			updated, err := u.Run(cmd.Context())
			if err != nil {
				return err
			}
			if len(updated) == 0 {
				printDetail("All models are up-to-date")
				return nil
			}
			printSuccess("Installed %d model(s): %s", len(updated), strings.Join(updated, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.LibraryURL, "library-url", updater.DefaultLibraryURL, "remote catalog URL")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", updater.DefaultLogFile, "update log path")

	return cmd
}
