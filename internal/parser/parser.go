// Package parser adapts third-party user-agent parsing libraries to a single
// capability interface so the benchmark runner can drive them uniformly.
//
// # Registered libraries
//
// Default returns one Factory per library in a fixed order:
//
//   - uap-go     github.com/ua-parser/uap-go (regex database, optionally loaded from disk)
//   - uasurfer   github.com/avct/uasurfer
//   - useragent  github.com/mssola/useragent
//
// Parsers returned by a Factory are not safe for concurrent use.
package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Library names as they appear in result lines and on the command line.
const (
	NameUAP       = "uap-go"
	NameSurfer    = "uasurfer"
	NameUserAgent = "useragent"
)

// Result holds the fields every library can report.
type Result struct {
	// Browser is the browser (user-agent) family, e.g. "Chrome".
	Browser string `json:"browser" yaml:"browser"`

	// OS is the operating system family, e.g. "Windows".
	OS string `json:"os" yaml:"os"`
}

// Parser converts a user-agent string into a Result.
type Parser interface {
	Parse(ua string) Result
}

// Factory constructs a Parser for one library.
type Factory struct {
	Name string
	New  func() (Parser, error)
}

// Options tunes library construction.
type Options struct {
	// RegexesPath points uap-go at a regexes.yaml file instead of its
	// bundled definitions.
	RegexesPath string
}

// InitError reports that a library could not be constructed.
type InitError struct {
	Library string
	Err     error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize %s: %v", e.Library, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Names returns the registered library names in default order.
func Names() []string {
	return []string{NameUAP, NameSurfer, NameUserAgent}
}

// IsKnown reports whether name is a registered library.
func IsKnown(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Default returns factories for every registered library in default order.
func Default(opts Options) []Factory {
	return []Factory{
		{Name: NameUAP, New: func() (Parser, error) {
			p, err := newUAP(opts.RegexesPath)
			if err != nil {
				return nil, err
			}
			return p, nil
		}},
		{Name: NameSurfer, New: func() (Parser, error) { return newSurfer(), nil }},
		{Name: NameUserAgent, New: func() (Parser, error) { return newUserAgent(), nil }},
	}
}

// Select returns the factories named in names, in that order.
// An empty names list selects every factory unchanged.
func Select(factories []Factory, names []string) ([]Factory, error) {
	if len(names) == 0 {
		return factories, nil
	}

	byName := make(map[string]Factory, len(factories))
	for _, f := range factories {
		byName[f.Name] = f
	}

	selected := make([]Factory, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		f, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown parser %q (available: %s)", name, strings.Join(Names(), ", "))
		}
		if seen[name] {
			return nil, fmt.Errorf("parser %q selected more than once", name)
		}
		seen[name] = true
		selected = append(selected, f)
	}
	return selected, nil
}

// Construct builds the parser for f. Any failure is reported as *InitError.
func Construct(f Factory) (Parser, error) {
	if f.New == nil {
		return nil, &InitError{Library: f.Name, Err: errors.New("no constructor")}
	}

	p, err := f.New()
	if err != nil {
		var initErr *InitError
		if errors.As(err, &initErr) {
			return nil, err
		}
		return nil, &InitError{Library: f.Name, Err: err}
	}
	if p == nil {
		return nil, &InitError{Library: f.Name, Err: errors.New("constructor returned no parser")}
	}
	return p, nil
}
