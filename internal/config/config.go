// Package config loads wren.yml: prompt defaults and named presets.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/simonhull/firebird-suite/wren/input"
)

// Config is the parsed contents of wren.yml.
type Config struct {
	Defaults Defaults          `mapstructure:"defaults"`
	Presets  map[string]Preset `mapstructure:"presets"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// Defaults apply to every prompt unless a flag or preset overrides them.
type Defaults struct {
	Prompt   string `mapstructure:"prompt"`
	Plain    bool   `mapstructure:"plain"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log_level"`
}

// Preset is a reusable prompt definition.
type Preset struct {
	Title      string   `mapstructure:"title"`
	Prompt     string   `mapstructure:"prompt"`
	Validators []string `mapstructure:"validators"`
	MinLength  int      `mapstructure:"min_length"`
	MaxLength  int      `mapstructure:"max_length"`
	Choices    []string `mapstructure:"choices"`
	Convert    string   `mapstructure:"convert"`
}

// Load reads the config file at path, or wren.yml in the working directory
// when path is empty. A missing wren.yml is not an error; a missing explicit
// path is. Environment variables prefixed with WREN_ override file values,
// e.g. WREN_DEFAULTS_PROMPT.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("defaults.prompt", input.DefaultPrompt)
	v.SetDefault("defaults.plain", false)
	v.SetDefault("defaults.format", "text")
	v.SetDefault("defaults.log_level", "warn")

	v.SetEnvPrefix("WREN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("wren")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	return cfg, nil
}

// Preset returns the preset called name. Names are case-insensitive.
func (c *Config) Preset(name string) (Preset, bool) {
	p, ok := c.Presets[strings.ToLower(name)]
	return p, ok
}

// PresetNames returns the preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
