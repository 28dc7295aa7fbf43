// Package bench times user-agent parsers over a shared corpus.
//
// Passes run strictly one after another: a library is constructed, timed over
// the whole corpus, and reported before the next library is touched. The first
// construction failure ends the run.
package bench

import (
	"fmt"
	"time"

	"github.com/wesleyorama2/uabench/internal/parser"
)

// Measurement is the outcome of one timed pass.
type Measurement struct {
	Library string        `json:"library" yaml:"library"`
	Count   int           `json:"count" yaml:"count"`
	Elapsed time.Duration `json:"-" yaml:"-"`
}

// Seconds returns the elapsed time as fractional seconds.
func (m Measurement) Seconds() float64 {
	return m.Elapsed.Seconds()
}

// Config contains the runner's optional hooks.
type Config struct {
	// Trace, when set, receives every input and its parsed result.
	Trace func(library, ua string, r parser.Result)

	// Report, when set, receives each measurement as soon as its pass ends.
	Report func(m Measurement)
}

// Runner executes benchmark passes.
type Runner struct {
	config Config
}

// NewRunner creates a runner with the given hooks.
func NewRunner(config Config) *Runner {
	return &Runner{config: config}
}

// Measure constructs the parser for f and times one pass over uas.
//
// Construction happens before the clock starts. uas is only read.
func (r *Runner) Measure(f parser.Factory, uas []string) (Measurement, error) {
	p, err := parser.Construct(f)
	if err != nil {
		return Measurement{}, err
	}

	trace := r.config.Trace

	start := time.Now()
	for _, ua := range uas {
		res := p.Parse(ua)
		if trace != nil {
			trace(f.Name, ua, res)
		}
	}
	elapsed := time.Since(start)

	m := Measurement{
		Library: f.Name,
		Count:   len(uas),
		Elapsed: elapsed,
	}
	if r.config.Report != nil {
		r.config.Report(m)
	}
	return m, nil
}

// Run measures each factory in order and stops at the first failure.
//
// On failure the measurements completed so far are returned with the error.
func (r *Runner) Run(factories []parser.Factory, uas []string) ([]Measurement, error) {
	if len(factories) == 0 {
		return nil, fmt.Errorf("no parsers to benchmark")
	}

	results := make([]Measurement, 0, len(factories))
	for _, f := range factories {
		m, err := r.Measure(f, uas)
		if err != nil {
			return results, err
		}
		results = append(results, m)
	}
	return results, nil
}
