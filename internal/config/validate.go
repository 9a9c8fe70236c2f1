package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/simonhull/firebird-suite/wren/logger"
	"github.com/simonhull/firebird-suite/wren/output"
)

// ValidationError describes one problem in wren.yml.
type ValidationError struct {
	Field      string // Field path (e.g., "presets.email.convert")
	Message    string // Error message
	Suggestion string // Helpful suggestion (optional)
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid config at %s: %s", e.Field, e.Message)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "invalid config"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "found %d config errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// Catalog tells Validate which validator and converter names exist.
type Catalog struct {
	Validators []string
	Converters []string
}

// Validate checks the config against the known validator and converter
// names.
func (c *Config) Validate(cat Catalog) error {
	var errs ValidationErrors

	if _, err := output.ParseFormat(c.Defaults.Format); err != nil {
		errs = append(errs, ValidationError{
			Field:      "defaults.format",
			Message:    fmt.Sprintf("unknown format %q", c.Defaults.Format),
			Suggestion: "use text, json or yaml",
		})
	}
	if _, err := logger.ParseLevel(c.Defaults.LogLevel); err != nil {
		errs = append(errs, ValidationError{
			Field:      "defaults.log_level",
			Message:    err.Error(),
			Suggestion: "use debug, info, warn, error or silent",
		})
	}

	for _, name := range c.PresetNames() {
		p := c.Presets[name]
		for i, v := range p.Validators {
			if !slices.Contains(cat.Validators, v) {
				errs = append(errs, ValidationError{
					Field:      fmt.Sprintf("presets.%s.validators[%d]", name, i),
					Message:    fmt.Sprintf("unknown validator %q", v),
					Suggestion: "available: " + strings.Join(cat.Validators, ", "),
				})
			}
		}
		if p.Convert != "" && !slices.Contains(cat.Converters, p.Convert) {
			errs = append(errs, ValidationError{
				Field:      fmt.Sprintf("presets.%s.convert", name),
				Message:    fmt.Sprintf("unknown converter %q", p.Convert),
				Suggestion: "available: " + strings.Join(cat.Converters, ", "),
			})
		}
		if p.MinLength < 0 || p.MaxLength < 0 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("presets.%s", name),
				Message: "min_length and max_length must not be negative",
			})
		}
		if p.MaxLength > 0 && p.MinLength > p.MaxLength {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("presets.%s.min_length", name),
				Message: fmt.Sprintf("min_length %d is greater than max_length %d", p.MinLength, p.MaxLength),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
