package config

import (
	"errors"
	"testing"
)

func TestValidate_MinimalValid(t *testing.T) {
	cfg := &Config{Count: 1, Parsers: []string{"uap-go"}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_ZeroCount(t *testing.T) {
	cfg := Default()
	cfg.Count = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "negative count",
			mutate:    func(c *Config) { c.Count = -5 },
			wantField: "count",
		},
		{
			name:      "unknown format",
			mutate:    func(c *Config) { c.Format = "csv" },
			wantField: "format",
		},
		{
			name:      "no parsers",
			mutate:    func(c *Config) { c.Parsers = nil },
			wantField: "parsers",
		},
		{
			name:      "unknown parser",
			mutate:    func(c *Config) { c.Parsers = []string{"uap-go", "UADetector"} },
			wantField: "parsers[1]",
		},
		{
			name:      "duplicate parser",
			mutate:    func(c *Config) { c.Parsers = []string{"useragent", "useragent"} },
			wantField: "parsers[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}

			var verrs *ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() error type = %T, want *ValidationErrors", err)
			}
			if len(verrs.Errors) != 1 {
				t.Fatalf("len(Errors) = %d, want 1: %v", len(verrs.Errors), err)
			}
			if verrs.Errors[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verrs.Errors[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := &ValidationErrors{}
	if got := errs.Error(); got != "no validation errors" {
		t.Errorf("Error() = %q", got)
	}

	errs.Add("count", "bad")
	if got := errs.Error(); got != "validation error on field 'count': bad" {
		t.Errorf("Error() = %q", got)
	}

	errs.Add("", "worse")
	want := "2 validation errors:\n  1. validation error on field 'count': bad\n  2. validation error: worse\n"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
