package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `defaults:
  prompt: "? "
  format: json
presets:
  Email:
    title: Enter your email
    prompt: "email> "
    validators: [notEmpty, email]
    convert: lower
  username:
    validators: [notEmpty]
    min_length: 3
    max_length: 16
`

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "wren.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

var catalog = Catalog{
	Validators: []string{"email", "notEmpty"},
	Converters: []string{"int", "lower"},
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, t.TempDir(), sampleConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "? ", cfg.Defaults.Prompt)
	assert.Equal(t, "json", cfg.Defaults.Format)
	assert.Equal(t, "warn", cfg.Defaults.LogLevel)
	assert.Equal(t, []string{"email", "username"}, cfg.PresetNames())

	email, ok := cfg.Preset("EMAIL")
	require.True(t, ok)
	assert.Equal(t, "Enter your email", email.Title)
	assert.Equal(t, "email> ", email.Prompt)
	assert.Equal(t, []string{"notEmpty", "email"}, email.Validators)
	assert.Equal(t, "lower", email.Convert)

	username, ok := cfg.Preset("username")
	require.True(t, ok)
	assert.Equal(t, 3, username.MinLength)
	assert.Equal(t, 16, username.MaxLength)

	require.NoError(t, cfg.Validate(catalog))
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.File)
	assert.Equal(t, "> ", cfg.Defaults.Prompt)
	assert.Equal(t, "text", cfg.Defaults.Format)
	assert.Empty(t, cfg.Presets)
}

func TestLoad_FindsWorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, sampleConfig)
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "? ", cfg.Defaults.Prompt)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, t.TempDir(), sampleConfig)
	t.Setenv("WREN_DEFAULTS_PROMPT", "$ ")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "$ ", cfg.Defaults.Prompt)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Defaults: Defaults{Format: "xml", LogLevel: "loud"},
		Presets: map[string]Preset{
			"age": {Validators: []string{"notEmpty", "integer"}, Convert: "symbol"},
			"pin": {MinLength: 6, MaxLength: 4},
		},
	}

	err := cfg.Validate(catalog)
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 5)

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.Equal(t, []string{
		"defaults.format",
		"defaults.log_level",
		"presets.age.validators[1]",
		"presets.age.convert",
		"presets.pin.min_length",
	}, fields)
	assert.Contains(t, err.Error(), "found 5 config errors")
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Field: "presets.x.convert", Message: "unknown converter", Suggestion: "use int"}
	assert.Equal(t, "invalid config at presets.x.convert: unknown converter. Suggestion: use int", e.Error())

	one := ValidationErrors{{Field: "a", Message: "b"}}
	assert.Equal(t, "invalid config at a: b", one.Error())
}
