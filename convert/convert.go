// Package convert provides ready-made converters for input.Input.
//
// Each converter has the input.Converter signature and can be passed to
// ConvertFunc directly:
//
//	input.New().ConvertFunc(convert.Int)
package convert

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/simonhull/firebird-suite/wren/input"
)

// decimalPattern admits plain decimal notation: no NaN, Inf, exponents or
// hex floats.
var decimalPattern = regexp.MustCompile(`^[-+]?\d+(\.\d+)?$`)

// Int parses a base-10 integer.
func Int(value string) (any, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid integer: %s", value)
	}
	return n, nil
}

// Float parses a decimal number such as 10 or -2.5.
func Float(value string) (any, error) {
	if !decimalPattern.MatchString(value) {
		return nil, fmt.Errorf("invalid number: %s", value)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number: %s", value)
	}
	return f, nil
}

// Number returns an int for integer text and a float64 for decimal text.
func Number(value string) (any, error) {
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}
	return Float(value)
}

// Bool accepts y/yes/true/1 and n/no/false/0 in any case.
func Bool(value string) (any, error) {
	switch strings.ToLower(value) {
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	}
	return nil, fmt.Errorf("invalid yes/no answer: %s", value)
}

// Upper converts to upper case.
func Upper(value string) (any, error) {
	return strings.ToUpper(value), nil
}

// Lower converts to lower case.
func Lower(value string) (any, error) {
	return strings.ToLower(value), nil
}

// Split returns a converter producing the trimmed, non-empty parts of the
// value separated by sep.
func Split(sep string) input.Converter {
	return func(value string) (any, error) {
		parts := strings.Split(value, sep)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	}
}

// OneOf returns a converter that normalises the value to the matching
// choice, ignoring case.
func OneOf(choices ...string) input.Converter {
	return func(value string) (any, error) {
		for _, c := range choices {
			if strings.EqualFold(value, c) {
				return c, nil
			}
		}
		return nil, fmt.Errorf("%q is not one of %s", value, strings.Join(choices, ", "))
	}
}

var byName = map[string]input.Converter{
	"int":    Int,
	"float":  Float,
	"number": Number,
	"bool":   Bool,
	"upper":  Upper,
	"lower":  Lower,
	"list":   Split(","),
}

// Lookup returns a converter by name: int, float, number, bool, upper,
// lower or list (comma separated).
func Lookup(name string) (input.Converter, bool) {
	c, ok := byName[name]
	return c, ok
}

// Names returns the names accepted by Lookup.
func Names() []string {
	return []string{"bool", "float", "int", "list", "lower", "number", "upper"}
}
