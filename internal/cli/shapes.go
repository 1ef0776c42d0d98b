package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	shape "github.com/gogpu/gg-shape"
)

func (c *CLI) newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the registered shape types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range shape.Types() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
