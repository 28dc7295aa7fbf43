package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/uabench/internal/parser"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the user-agent libraries that can be benchmarked",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range parser.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
