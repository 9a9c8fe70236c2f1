package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	tests := []struct {
		name  string
		print func(*Printer, string)
		want  string
	}{
		{"success", (*Printer).Success, "✔ done\n"},
		{"error", (*Printer).Error, "✘ done\n"},
		{"info", (*Printer).Info, "done\n"},
		{"step", (*Printer).Step, "   done\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewPrinter(&buf, true), "done")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	p.Verbose("hidden")
	assert.Empty(t, buf.String(), "verbose output should be empty when verbose mode is off")

	p.SetVerbose(true)
	p.Verbose("loaded wren.yml")
	assert.Equal(t, "· loaded wren.yml\n", buf.String())
}

func TestDefaultPrinter(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	SetDefault(NewPrinter(&buf, true))

	Error("failed")

	assert.Equal(t, "✘ failed\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{"JSON", JSON, false},
		{" yaml ", YAML, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteValue(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		value  any
		want   string
	}{
		{"text string", Text, "hello", "hello\n"},
		{"text int", Text, 42, "42\n"},
		{"text list", Text, []string{"a", "b"}, "a\nb\n"},
		{"json string", JSON, "hello", "\"hello\"\n"},
		{"json float", JSON, 10.5, "10.5\n"},
		{"json list", JSON, []string{"a", "b"}, "[\"a\",\"b\"]\n"},
		{"yaml int", YAML, 42, "42\n"},
		{"yaml list", YAML, []string{"a", "b"}, "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteValue(&buf, tt.format, tt.value))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	err := WriteValue(&bytes.Buffer{}, Format("xml"), "x")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
