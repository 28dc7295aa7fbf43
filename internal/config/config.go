// Package config provides configuration loading and validation for benchmark runs.
package config

import (
	"github.com/wesleyorama2/uabench/internal/corpus"
	"github.com/wesleyorama2/uabench/internal/parser"
)

// Config is the full set of options for one benchmark run.
//
// Example YAML:
//
//	count: 10000
//	verbose: false
//	parsers: [uap-go, uasurfer, useragent]
//	regexes: ./regexes.yaml
//	corpus: ./useragents.txt
//	format: text
type Config struct {
	// Count is the number of user-agent strings parsed per library
	Count int `json:"count" yaml:"count"`

	// Verbose prints every input with its parsed OS and browser families
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Parsers selects and orders the libraries to benchmark
	Parsers []string `json:"parsers,omitempty" yaml:"parsers,omitempty"`

	// Regexes is an optional regexes.yaml for uap-go
	Regexes string `json:"regexes,omitempty" yaml:"regexes,omitempty"`

	// Corpus is an optional file of sample strings, one per line,
	// cycled in place of the built-in examples
	Corpus string `json:"corpus,omitempty" yaml:"corpus,omitempty"`

	// Format is the report format: text, json, yaml or junit
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// NoColor disables colored diagnostics
	NoColor bool `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		Count:   corpus.DefaultCount,
		Parsers: parser.Names(),
		Format:  "text",
	}
}

// ParserOptions returns the construction options derived from c.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{RegexesPath: c.Regexes}
}
