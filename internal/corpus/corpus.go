// Package corpus builds the user-agent input shared by every benchmark pass.
package corpus

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// DefaultCount is the corpus size of the reference run.
const DefaultCount = 10_000

// examples are real-world user-agent strings covering desktop, mobile,
// legacy IE and Presto-era Opera clients.
var examples = []string{
	"Mozilla/5.0 (iPhone; CPU iPhone OS 5_1_1 like Mac OS X) AppleWebKit/534.46 (KHTML, like Gecko) Version/5.1 Mobile/9B206 Safari/7534.48.3",
	"Mozilla/5.0 (Windows NT 6.1; WOW64; rv:40.0) Gecko/20100101 Firefox/40.1",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/42.0.2311.135 Safari/537.36 Edge/12.246",
	"Mozilla/5.0 (Windows NT 6.1; WOW64; Trident/7.0; AS; rv:11.0) like Gecko",
	"Mozilla/5.0 (Windows NT 6.1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/41.0.2228.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/41.0.2227.0 Safari/537.36",
	"Opera/9.80 (X11; Linux i686; Ubuntu/14.10) Presto/2.12.388 Version/12.16",
	"Opera/12.80 (Windows NT 5.1; U; en) Presto/2.10.289 Version/12.02",
	"Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; WOW64; Trident/5.0; SLCC2; Media Center PC 6.0; InfoPath.3; MS-RTC LM 8; Zune 4.7)",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_9_3) AppleWebKit/537.75.14 (KHTML, like Gecko) Version/7.0.3 Safari/7046A194A",
	"Mozilla/5.0 (Macintosh; U; Intel Mac OS X 10_6_7; da-dk) AppleWebKit/533.21.1 (KHTML, like Gecko) Version/5.0.5 Safari/533.21.1",
	"Opera/12.02 (Android 4.1; Linux; Opera Mobi/ADR-1111101157; U; en-US) Presto/2.9.201 Version/12.02",
}

// Examples returns a copy of the built-in sample strings in their fixed order.
func Examples() []string {
	return slices.Clone(examples)
}

// Build returns count entries cycled from the built-in examples.
func Build(count int) []string {
	return Cycle(examples, count)
}

// Cycle returns count entries where entry i is samples[i % len(samples)].
//
// A non-positive count or an empty sample set yields an empty, non-nil slice.
func Cycle(samples []string, count int) []string {
	if count <= 0 || len(samples) == 0 {
		return []string{}
	}

	out := make([]string, count)
	for i := range out {
		out[i] = samples[i%len(samples)]
	}
	return out
}

// Load reads sample strings from a file, one per line.
// Blank lines and lines starting with '#' are skipped.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var samples []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		samples = append(samples, line)
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("corpus file %s contains no user-agent strings", path)
	}
	return samples, nil
}
