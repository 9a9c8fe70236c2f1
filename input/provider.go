package input

import (
	"fmt"
	"sort"
)

// Validator checks a candidate value. It returns an empty string when the
// value is accepted and the message to display when it is rejected.
type Validator func(value string) string

// Provider resolves validator names to validators.
//
// Any type with a name-to-validator lookup can serve as a provider; the
// validate package's Registry is the full-featured one.
type Provider interface {
	// Lookup returns the validator registered under name.
	Lookup(name string) (Validator, bool)
	// Name identifies the provider in error messages.
	Name() string
}

// Rules is a fixed, map-backed Provider.
type Rules struct {
	name  string
	rules map[string]Validator
}

// NewRules creates a provider called name from a set of named validators.
func NewRules(name string, rules map[string]Validator) *Rules {
	copied := make(map[string]Validator, len(rules))
	for k, v := range rules {
		copied[k] = v
	}
	return &Rules{name: name, rules: copied}
}

// Lookup implements Provider.
func (r *Rules) Lookup(name string) (Validator, bool) {
	v, ok := r.rules[name]
	return v, ok && v != nil
}

// Name implements Provider.
func (r *Rules) Name() string {
	return r.name
}

// Names returns the validator names in sorted order.
func (r *Rules) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RequiredMessage is the rejection message of the built-in notEmpty rule.
const RequiredMessage = "Input is required"

// NotEmpty rejects an empty value.
func NotEmpty(value string) string {
	if value == "" {
		return RequiredMessage
	}
	return ""
}

var defaultValidators = NewRules("DefaultValidators", map[string]Validator{
	"notEmpty": NotEmpty,
})

// DefaultValidators returns the provider every Input starts with.
// It knows a single rule, notEmpty.
func DefaultValidators() Provider {
	return defaultValidators
}

// UnknownValidatorError is reported when a validator name cannot be resolved
// against the active provider.
type UnknownValidatorError struct {
	Name     string // Requested validator name
	Provider string // Name of the provider that was asked
}

// Error returns a formatted error message
func (e *UnknownValidatorError) Error() string {
	return fmt.Sprintf("unknown validator %q in %s", e.Name, e.Provider)
}
