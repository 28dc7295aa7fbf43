package config

import (
	"fmt"
	"strings"

	"github.com/wesleyorama2/uabench/internal/parser"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

var validFormats = map[string]bool{
	"text":  true,
	"json":  true,
	"yaml":  true,
	"junit": true,
}

// Validate validates the configuration.
//
// Returns nil if valid, or a *ValidationErrors containing all validation errors.
func (c *Config) Validate() error {
	errs := &ValidationErrors{}

	if c.Count < 0 {
		errs.Add("count", "count must not be negative")
	}

	if c.Format != "" && !validFormats[c.Format] {
		errs.Add("format", fmt.Sprintf("unknown format: %s", c.Format))
	}

	if len(c.Parsers) == 0 {
		errs.Add("parsers", "at least one parser is required")
	}
	seen := make(map[string]bool, len(c.Parsers))
	for i, name := range c.Parsers {
		field := fmt.Sprintf("parsers[%d]", i)
		switch {
		case !parser.IsKnown(name):
			errs.Add(field, fmt.Sprintf("unknown parser: %s", name))
		case seen[name]:
			errs.Add(field, fmt.Sprintf("duplicate parser: %s", name))
		}
		seen[name] = true
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
