package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the build information shown by --version. main calls it
// with values injected through ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the lvsteiner command tree. The logger is created in
// PersistentPreRun so --verbose applies to every subcommand.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "lvsteiner",
		Short:        "lvsteiner computes exact minimum Steiner trees on unweighted graphs",
		Long:         `lvsteiner finds the smallest connected subgraph that joins a set of terminal vertices, using the Dreyfus-Wagner subset dynamic program over BFS distances.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lvsteiner %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newGenCmd())
	root.AddCommand(newServeCmd())

	return root
}

// Execute runs the CLI with ctx; cancelling ctx stops long-running commands.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
