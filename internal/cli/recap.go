package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhuels/starrecap/pkg/config"
	apperrors "github.com/mhuels/starrecap/pkg/errors"
	"github.com/mhuels/starrecap/pkg/github"
	"github.com/mhuels/starrecap/pkg/report"
	"github.com/mhuels/starrecap/pkg/snapshot"
	"github.com/mhuels/starrecap/pkg/stars"
)

// recapFlags holds the command-line flags for the recap command.
type recapFlags struct {
	output string // snapshot destination path
	token  string // access token override
}

// recapCommand creates the recap command, the full pipeline:
// fetch → normalize → export → aggregate → render.
func (c *CLI) recapCommand() *cobra.Command {
	var flags recapFlags

	cmd := &cobra.Command{
		Use:   "recap [username]",
		Short: "Fetch starred repos, export a snapshot, and print the recap",
		Long: `Fetch every repository the user has starred, export the normalized set
as a JSON snapshot, and print the boxed console recap.

The username falls back to GITHUB_USERNAME when omitted. Setting
GITHUB_TOKEN (or --token) raises the API rate limit; unauthenticated
requests work but are limited harder.

Fetching is all-or-nothing: any API failure aborts the run before the
snapshot is written, so a previous snapshot is never replaced by a
partial one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRecap(cmd.Context(), cmd.OutOrStdout(), args, &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "snapshot file path (default starred_repos.json)")
	cmd.Flags().StringVar(&flags.token, "token", "", "GitHub access token (default $GITHUB_TOKEN)")

	return cmd
}

func (c *CLI) runRecap(ctx context.Context, out io.Writer, args []string, flags *recapFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	username := cfg.Username
	if len(args) == 1 {
		username = args[0]
	}
	if username == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "no username given (pass one or set GITHUB_USERNAME)")
	}

	token := cfg.Token
	if flags.token != "" {
		token = flags.token
	}
	output := cfg.Output
	if flags.output != "" {
		output = flags.output
	}

	printInfo("Fetching starred repos for %s...", StyleHighlight.Render(username))

	client := github.NewClient(token, c.Logger)
	raw, err := client.ListStarred(ctx, username)
	if err != nil {
		return err
	}

	records := stars.NormalizeAll(raw)

	doc, err := snapshot.Export(records, output, time.Now())
	if err != nil {
		return err
	}
	printSuccess("Exported %d repositories", doc.TotalCount)
	printFile(output)

	for _, line := range report.Render(doc) {
		fmt.Fprintln(out, line)
	}
	return nil
}
