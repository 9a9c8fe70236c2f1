package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by ParseFormat for unknown names.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format selects how a prompt result is written.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat parses a format name. An empty name means Text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return Text, nil
	case Text, JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnsupportedFormat, s)
}

// WriteValue writes v to w in format f, followed by a newline.
func WriteValue(w io.Writer, f Format, v any) error {
	switch f {
	case Text, "":
		return writeText(w, v)
	case JSON:
		return json.NewEncoder(w).Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

func writeText(w io.Writer, v any) error {
	if items, ok := v.([]string); ok {
		for _, item := range items {
			if _, err := fmt.Fprintln(w, item); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(w, v)
	return err
}
