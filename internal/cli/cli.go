// Package cli implements the ringdemo command-line interface.
//
// ringdemo renders TOML scene files (see package scenefile) to PNG using the
// shape package on a gg context.
//
// # Commands
//
//   - render: draw a scene file to a PNG image
//   - shapes: list the registered shape types
//
// All commands accept --verbose (-v) for debug logging. The logger is a
// charmbracelet/log logger passed through the command context; it is also
// installed as the shape package's slog logger.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	shape "github.com/gogpu/gg-shape"
)

// CLI holds the output streams shared by all commands.
type CLI struct {
	out    io.Writer
	errOut io.Writer
}

// New returns a CLI writing command output to out and logs to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{out: out, errOut: errOut}
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "ringdemo",
		Short:         "Render ring, sector and circle scenes with gg",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			l := newLogger(c.errOut, level)
			shape.SetLogger(slogger(l))
			cmd.SetContext(withLogger(cmd.Context(), l))
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.newRenderCmd())
	root.AddCommand(c.newShapesCmd())
	return root
}

// Execute runs the CLI with os.Args against stdout and stderr.
func Execute(ctx context.Context) error {
	return New(os.Stdout, os.Stderr).RootCommand().ExecuteContext(ctx)
}
