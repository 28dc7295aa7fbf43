package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/uabench/internal/bench"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText prints one line per library as each pass completes
	FormatText OutputFormat = "text"
	// FormatJSON outputs a single JSON report after all passes
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs a single YAML report after all passes
	FormatYAML OutputFormat = "yaml"
	// FormatJUnit outputs JUnit XML (for CI/CD integration)
	FormatJUnit OutputFormat = "junit"
)

// Formats returns every supported format name.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML), string(FormatJUnit)}
}

// ParseFormat converts a format name to an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML, FormatJUnit:
		return OutputFormat(s), nil
	}
	return "", fmt.Errorf("unknown output format: %s", s)
}

// ResultData is one library's row in a report.
type ResultData struct {
	Library        string  `json:"library" yaml:"library"`
	ElapsedSeconds float64 `json:"elapsedSeconds" yaml:"elapsedSeconds"`
	Count          int     `json:"count" yaml:"count"`
	Line           string  `json:"line" yaml:"line"`
}

// Report is the structured form of a completed run.
type Report struct {
	Count     int          `json:"count" yaml:"count"`
	Results   []ResultData `json:"results" yaml:"results"`
	Timestamp string       `json:"timestamp" yaml:"timestamp"`
}

// NewReport builds a report from the measurements of a run over count inputs.
func NewReport(measurements []bench.Measurement, count int) *Report {
	r := &Report{
		Count:     count,
		Results:   make([]ResultData, 0, len(measurements)),
		Timestamp: time.Now().Format(time.RFC3339),
	}
	for _, m := range measurements {
		r.Results = append(r.Results, ResultData{
			Library:        m.Library,
			ElapsedSeconds: m.Seconds(),
			Count:          m.Count,
			Line:           FormatLine(m),
		})
	}
	return r
}

// JUnitTestSuite represents a JUnit test suite
type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Time      string          `xml:"time,attr"`
	Timestamp string          `xml:"timestamp,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase represents a JUnit test case
type JUnitTestCase struct {
	Name      string `xml:"name,attr"`
	ClassName string `xml:"classname,attr"`
	Time      string `xml:"time,attr"`
	SystemOut string `xml:"system-out,omitempty"`
}

// Render writes r to w in the given format. FormatText writes the result
// lines only.
func Render(w io.Writer, format OutputFormat, r *Report) error {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err

	case FormatYAML:
		out, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(out)
		return err

	case FormatJUnit:
		suite := JUnitTestSuite{
			Name:      "uabench",
			Tests:     len(r.Results),
			Timestamp: r.Timestamp,
		}
		var total float64
		for _, res := range r.Results {
			total += res.ElapsedSeconds
			suite.TestCases = append(suite.TestCases, JUnitTestCase{
				Name:      res.Library,
				ClassName: "uabench",
				Time:      FormatSeconds(res.ElapsedSeconds),
				SystemOut: res.Line,
			})
		}
		suite.Time = FormatSeconds(total)

		out, err := xml.MarshalIndent(suite, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s%s\n", xml.Header, out)
		return err

	case FormatText:
		for _, res := range r.Results {
			if _, err := fmt.Fprintln(w, res.Line); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown output format: %s", format)
}
