package convert

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/wren/input"
)

func TestConverters(t *testing.T) {
	tests := []struct {
		name    string
		conv    input.Converter
		value   string
		want    any
		wantErr string
	}{
		{"int", Int, "42", 42, ""},
		{"int negative", Int, "-7", -7, ""},
		{"int invalid", Int, "abc", nil, "invalid integer: abc"},
		{"float", Float, "10.5", 10.5, ""},
		{"float invalid", Float, "ten", nil, "invalid number: ten"},
		{"float nan", Float, "NaN", nil, "invalid number: NaN"},
		{"float exponent", Float, "1e3", nil, "invalid number: 1e3"},
		{"number int", Number, "10", 10, ""},
		{"number float", Number, "20.3", 20.3, ""},
		{"number invalid", Number, "1,5", nil, "invalid number: 1,5"},
		{"number nan", Number, "NaN", nil, "invalid number: NaN"},
		{"number inf", Number, "Inf", nil, "invalid number: Inf"},
		{"number exponent", Number, "1e3", nil, "invalid number: 1e3"},
		{"number hex float", Number, "0x1p4", nil, "invalid number: 0x1p4"},
		{"bool yes", Bool, "Yes", true, ""},
		{"bool zero", Bool, "0", false, ""},
		{"bool invalid", Bool, "maybe", nil, "invalid yes/no answer: maybe"},
		{"upper", Upper, "wren", "WREN", ""},
		{"lower", Lower, "WREN", "wren", ""},
		{"split", Split(","), "ruby, go ,, python", []string{"ruby", "go", "python"}, ""},
		{"one of", OneOf("ruby", "python", "javascript"), "Python", "python", ""},
		{"one of miss", OneOf("ruby", "go"), "perl", nil, `"perl" is not one of ruby, go`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.conv(tt.value)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup(t *testing.T) {
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Len(t, byName, len(names))

	for _, name := range names {
		c, ok := Lookup(name)
		assert.True(t, ok, name)
		assert.NotNil(t, c, name)
	}

	_, ok := Lookup("symbol")
	assert.False(t, ok)
}

func TestNumber_WithInput(t *testing.T) {
	var buf bytes.Buffer

	got, err := input.NewWithOptions(input.Options{
		Reader: strings.NewReader("ten\n12.5\n"),
		Writer: &buf,
		Plain:  true,
	}).ConvertFunc(Number).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12.5, got)
	assert.Contains(t, buf.String(), "! Conversion error: invalid number: ten (please add validation)")
}
