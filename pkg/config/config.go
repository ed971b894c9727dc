// Package config handles matgraph tool configuration via YAML files and
// environment variables.
//
// Configuration precedence (highest to lowest):
//  1. Command-line flags (--schema, --format, ...)
//  2. Environment variables (MATGRAPH_*)
//  3. Config file (matgraph.yaml)
//  4. Built-in defaults
//
// Environment variables:
//   - MATGRAPH_SCHEMA   path to a JSON/YAML node schema file ("" = embedded)
//   - MATGRAPH_FORMAT   "condensed" or "expanded"
//   - MATGRAPH_INDENT   output indent width, 0 for compact
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatCondensed = "condensed"
	FormatExpanded  = "expanded"
)

// Config holds the document tool settings.
type Config struct {
	// Schema is the path to the node schema file; empty selects the
	// embedded platform schema.
	Schema string `yaml:"schema"`

	// Format selects the encoding of written documents.
	Format string `yaml:"format"`

	// Indent is the output indent width; 0 writes compact documents.
	Indent int `yaml:"indent"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format: FormatCondensed,
		Indent: 2,
	}
}

// LoadFromFile reads a YAML config file over the defaults, then applies
// environment overrides. An empty path skips the file.
func LoadFromFile(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("cannot read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFromEnv returns the defaults with environment overrides applied.
func LoadFromEnv() (Config, error) {
	return LoadFromFile("")
}

// FindConfigFile returns the first config file present among the standard
// locations, or "".
func FindConfigFile() string {
	candidates := []string{"matgraph.yaml", "matgraph.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "matgraph", "matgraph.yaml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("MATGRAPH_SCHEMA"); ok {
		c.Schema = v
	}
	if v, ok := os.LookupEnv("MATGRAPH_FORMAT"); ok {
		c.Format = v
	}
	if v, ok := os.LookupEnv("MATGRAPH_INDENT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Indent = n
		}
	}
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if c.Format != FormatCondensed && c.Format != FormatExpanded {
		return fmt.Errorf("invalid format %q: must be %q or %q", c.Format, FormatCondensed, FormatExpanded)
	}
	if c.Indent < 0 {
		return fmt.Errorf("invalid indent %d: must be >= 0", c.Indent)
	}
	return nil
}
