// Package config loads the optional fax.toml file that tunes the faxc
// command: output format, logging and which analysis passes run.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml"
)

// FileName is the name of the configuration file looked up in the working
// directory when no path is given.
const FileName = "fax.toml"

// Output formats for diagnostics.
const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Pass names, in the order the driver runs them by default.
const (
	PassOwnership = "ownership"
	PassTypes     = "types"
)

var (
	formats   = []string{FormatJSON, FormatPretty}
	logLevels = []string{"silent", "error", "warning", "verbose"}
	passNames = []string{PassOwnership, PassTypes}
)

// Config is the resolved configuration.
type Config struct {
	Format    string   // diagnostic format: json or pretty
	Color     bool     // colored pretty output
	LogLevel  string   // silent, error, warning or verbose
	Normalize bool     // NFC-normalize source text before lexing
	Passes    []string // analysis passes run by check
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Format:    FormatJSON,
		Color:     true,
		LogLevel:  "error",
		Normalize: true,
		Passes:    []string{PassOwnership, PassTypes},
	}
}

// tomlConfig is the file as it is encoded in TOML. Every setting is a
// pointer so that absent keys keep their defaults.
type tomlConfig struct {
	Diagnostics *struct {
		Format *string `toml:"format"`
		Color  *bool   `toml:"color"`
	} `toml:"diagnostics"`
	Log *struct {
		Level *string `toml:"level"`
	} `toml:"log"`
	Lexer *struct {
		Normalize *bool `toml:"normalize"`
	} `toml:"lexer"`
	Analysis *struct {
		Passes *[]string `toml:"passes"`
	} `toml:"analysis"`
}

// Load reads the configuration at path. An empty path means FileName in the
// working directory. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = FileName
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a TOML document over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	tc := &tomlConfig{}
	if err := toml.Unmarshal(data, tc); err != nil {
		return nil, err
	}

	cfg := Default()
	if d := tc.Diagnostics; d != nil {
		if d.Format != nil {
			cfg.Format = *d.Format
		}
		if d.Color != nil {
			cfg.Color = *d.Color
		}
	}
	if tc.Log != nil && tc.Log.Level != nil {
		cfg.LogLevel = *tc.Log.Level
	}
	if tc.Lexer != nil && tc.Lexer.Normalize != nil {
		cfg.Normalize = *tc.Lexer.Normalize
	}
	if tc.Analysis != nil && tc.Analysis.Passes != nil {
		cfg.Passes = *tc.Analysis.Passes
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks that every setting names a known value.
func (c *Config) validate() error {
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("unknown diagnostics format %q", c.Format)
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if len(c.Passes) == 0 {
		return errors.New("at least one analysis pass is required")
	}
	seen := make(map[string]bool)
	for _, p := range c.Passes {
		if !slices.Contains(passNames, p) {
			return fmt.Errorf("unknown analysis pass %q", p)
		}
		if seen[p] {
			return fmt.Errorf("analysis pass %q listed twice", p)
		}
		seen[p] = true
	}
	return nil
}
