package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/uabench/internal/output"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

// NewRootCmd builds the command tree. Called with no arguments the root
// command runs the reference benchmark.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "uabench",
		Short:   "Compare the parsing speed of Go user-agent libraries",
		Version: version,
		Long: `uabench times several user-agent parsing libraries over the same corpus
of real-world user-agent strings and prints the elapsed seconds per library.

Libraries run one after another in a fixed order; if any of them fails to
initialize, the run stops and nothing is reported for the remaining ones.

Examples:
  uabench
  uabench --count 50000 --parsers useragent,uasurfer
  uabench --config bench.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBenchmark,
	}

	cmd.Flags().StringP("config", "c", "", "Configuration file (YAML or JSON)")
	cmd.Flags().IntP("count", "n", 0, "Number of user-agent strings parsed per library (default 10000)")
	cmd.Flags().BoolP("verbose", "v", false, "Print every input with its parsed OS and browser families")
	cmd.Flags().StringSlice("parsers", nil, "Libraries to benchmark, in order (default uap-go,uasurfer,useragent)")
	cmd.Flags().String("regexes", "", "regexes.yaml used by uap-go instead of its bundled definitions")
	cmd.Flags().String("corpus", "", "File of user-agent strings (one per line) to cycle instead of the built-in samples")
	cmd.Flags().StringP("format", "f", "", "Output format: text, json, yaml or junit (default text)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(newListCmd())
	return cmd
}

// Execute runs the root command and reports any error on stderr.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		noColor, _ := RootCmd.Flags().GetBool("no-color")
		fmt.Fprintf(os.Stderr, "%s Error: %v\n", output.ErrorIcon(!output.UseColors(os.Stderr, noColor)), err)
		return err
	}
	return nil
}
