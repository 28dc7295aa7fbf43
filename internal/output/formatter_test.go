package output

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wesleyorama2/uabench/internal/bench"
	"github.com/wesleyorama2/uabench/internal/parser"
)

var linePattern = regexp.MustCompile(`^\S+ took [0-9]+\.[0-9]+ sec\. for [0-9]+ user-agent-strings$`)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "whole seconds", input: 1, want: "1.0"},
		{name: "zero", input: 0, want: "0.0"},
		{name: "fraction", input: 0.123456789, want: "0.123456789"},
		{name: "tiny", input: 0.0000012, want: "0.0000012"},
		{name: "large", input: 12.5, want: "12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSeconds(tt.input))
		})
	}
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name string
		m    bench.Measurement
		want string
	}{
		{
			name: "fractional elapsed",
			m:    bench.Measurement{Library: "uap-go", Count: 10000, Elapsed: 1500 * time.Millisecond},
			want: "uap-go took 1.5 sec. for 10000 user-agent-strings",
		},
		{
			name: "whole elapsed",
			m:    bench.Measurement{Library: "uasurfer", Count: 12, Elapsed: 2 * time.Second},
			want: "uasurfer took 2.0 sec. for 12 user-agent-strings",
		},
		{
			name: "nanoseconds",
			m:    bench.Measurement{Library: "useragent", Count: 1, Elapsed: 850 * time.Nanosecond},
			want: "useragent took 0.00000085 sec. for 1 user-agent-strings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLine(tt.m)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, linePattern, got)
		})
	}
}

func TestPrinter_Result(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(PrinterConfig{Writer: &buf})

	p.Result(bench.Measurement{Library: "uap-go", Count: 3, Elapsed: 250 * time.Millisecond})
	p.Result(bench.Measurement{Library: "useragent", Count: 3, Elapsed: time.Second})

	assert.Equal(t,
		"uap-go took 0.25 sec. for 3 user-agent-strings\nuseragent took 1.0 sec. for 3 user-agent-strings\n",
		buf.String())
}

func TestPrinter_Trace(t *testing.T) {
	var out, trace bytes.Buffer
	p := NewPrinter(PrinterConfig{Writer: &out, TraceWriter: &trace})

	p.Trace("uap-go", "Mozilla/5.0 (X11; Linux x86_64)", parser.Result{Browser: "Chrome", OS: "Linux"})

	assert.Empty(t, out.String())
	assert.Equal(t, "Mozilla/5.0 (X11; Linux x86_64)\n\tLinux\n\tChrome\n", trace.String())
	assert.False(t, strings.Contains(trace.String(), "\x1b["), "no ANSI codes off a terminal")
}

func TestPrinter_TraceDefaultsToWriter(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(PrinterConfig{Writer: &out, NoColor: true})

	p.Trace("uasurfer", "ua", parser.Result{Browser: "Firefox", OS: "Windows"})
	assert.Equal(t, "ua\n\tWindows\n\tFirefox\n", out.String())
}
