// Package cli implements the starrecap command-line interface.
//
// This package provides commands for fetching a user's starred GitHub
// repositories, exporting them as a JSON snapshot, rendering the boxed
// console recap, and keeping local models in sync with a remote catalog.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - recap: Fetch, export, and render the starred-repository recap
//   - report: Re-render the recap from an existing snapshot file
//   - update: Pull models missing locally from the remote catalog
//
// # Example
//
//	import "github.com/mhuels/starrecap/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhuels/starrecap/pkg/buildinfo"
)

// appName is the application name used for display and file defaults.
const appName = "starrecap"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Starrecap snapshots and summarizes your starred GitHub repositories",
		Long:         `Starrecap fetches every repository a user has starred on GitHub, persists a JSON snapshot, and renders a fixed-width console recap with language, popularity, and topic breakdowns.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.recapCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.updateCommand())
	root.AddCommand(c.completionCommand())

	return root
}
