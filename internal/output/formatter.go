package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wesleyorama2/uabench/internal/bench"
	"github.com/wesleyorama2/uabench/internal/parser"
)

// FormatSeconds renders s as the shortest decimal that round-trips,
// always with a fractional part and never in exponent form.
func FormatSeconds(s float64) string {
	out := strconv.FormatFloat(s, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// FormatLine renders the result line for one measurement.
func FormatLine(m bench.Measurement) string {
	return fmt.Sprintf("%s took %s sec. for %d user-agent-strings", m.Library, FormatSeconds(m.Seconds()), m.Count)
}

// Printer writes result lines and per-parse diagnostics as plain text.
type Printer struct {
	out    io.Writer
	trace  io.Writer
	colors *ColorScheme
}

// PrinterConfig contains configuration for Printer.
type PrinterConfig struct {
	// Writer receives result lines.
	Writer io.Writer

	// TraceWriter receives verbose diagnostics. Defaults to Writer.
	TraceWriter io.Writer

	// NoColor disables colors even on a terminal.
	NoColor bool
}

// NewPrinter creates a printer. Diagnostics are colored only on a terminal.
func NewPrinter(config PrinterConfig) *Printer {
	if config.TraceWriter == nil {
		config.TraceWriter = config.Writer
	}

	scheme := NoColorScheme()
	if UseColors(config.TraceWriter, config.NoColor) {
		scheme = DefaultColorScheme()
	}

	return &Printer{
		out:    config.Writer,
		trace:  config.TraceWriter,
		colors: scheme,
	}
}

// Result writes the line for m. Result lines are never colored.
func (p *Printer) Result(m bench.Measurement) {
	fmt.Fprintln(p.out, FormatLine(m))
}

// Trace writes the input and the OS and browser families it parsed to.
func (p *Printer) Trace(_, ua string, r parser.Result) {
	fmt.Fprintf(p.trace, "%s\n\t%s\n\t%s\n",
		p.colors.Input.Sprint(ua),
		p.colors.OS.Sprint(r.OS),
		p.colors.Browser.Sprint(r.Browser))
}
