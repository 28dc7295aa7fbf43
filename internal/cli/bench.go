package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/uabench/internal/bench"
	"github.com/wesleyorama2/uabench/internal/config"
	"github.com/wesleyorama2/uabench/internal/corpus"
	"github.com/wesleyorama2/uabench/internal/output"
	"github.com/wesleyorama2/uabench/internal/parser"
)

// runBenchmark resolves the configuration, builds the corpus and times every
// selected library in order.
func runBenchmark(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	uas, err := buildCorpus(cfg)
	if err != nil {
		return err
	}

	factories, err := parser.Select(parser.Default(cfg.ParserOptions()), cfg.Parsers)
	if err != nil {
		return err
	}

	// Structured reports own stdout, so diagnostics move to stderr.
	traceWriter := cmd.OutOrStdout()
	if format != output.FormatText {
		traceWriter = cmd.ErrOrStderr()
	}
	printer := output.NewPrinter(output.PrinterConfig{
		Writer:      cmd.OutOrStdout(),
		TraceWriter: traceWriter,
		NoColor:     cfg.NoColor,
	})

	var runConfig bench.Config
	if cfg.Verbose {
		runConfig.Trace = printer.Trace
	}
	if format == output.FormatText {
		runConfig.Report = printer.Result
	}

	results, err := bench.NewRunner(runConfig).Run(factories, uas)
	if err != nil {
		return err
	}

	if format != output.FormatText {
		return output.Render(cmd.OutOrStdout(), format, output.NewReport(results, len(uas)))
	}
	return nil
}

// resolveConfig layers defaults, the optional config file and explicit flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		cfg = loaded
	}

	if flags.Changed("count") {
		cfg.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("parsers") {
		cfg.Parsers, _ = flags.GetStringSlice("parsers")
	}
	if flags.Changed("regexes") {
		cfg.Regexes, _ = flags.GetString("regexes")
	}
	if flags.Changed("corpus") {
		cfg.Corpus, _ = flags.GetString("corpus")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildCorpus cycles the configured samples up to cfg.Count entries.
func buildCorpus(cfg *config.Config) ([]string, error) {
	if cfg.Corpus == "" {
		return corpus.Build(cfg.Count), nil
	}

	samples, err := corpus.Load(cfg.Corpus)
	if err != nil {
		return nil, err
	}
	return corpus.Cycle(samples, cfg.Count), nil
}
