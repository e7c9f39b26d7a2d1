// Package config loads the editor's configuration from YAML with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultPath is where the editor looks for its configuration.
const DefaultPath = ".rapport.yml"

// Config is the top-level configuration, corresponding to .rapport.yml.
type Config struct {
	Port    int    `yaml:"port" koanf:"port"`
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	GeneratorURL        string `yaml:"generator_url" koanf:"generator_url"`
	GeneratorTimeoutSec int    `yaml:"generator_timeout_sec" koanf:"generator_timeout_sec"`

	SaveDebounceMS    int `yaml:"save_debounce_ms" koanf:"save_debounce_ms"`
	PreviewDebounceMS int `yaml:"preview_debounce_ms" koanf:"preview_debounce_ms"`

	MaxChapterLevel int `yaml:"max_chapter_level" koanf:"max_chapter_level"`
	RevisionLimit   int `yaml:"revision_limit" koanf:"revision_limit"`

	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:                8090,
		DataDir:             ".rapport",
		GeneratorURL:        "http://localhost:8000",
		GeneratorTimeoutSec: 120,
		SaveDebounceMS:      500,
		PreviewDebounceMS:   300,
		MaxChapterLevel:     3,
		RevisionLimit:       20,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (RAPPORT_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// RAPPORT_PORT -> port, RAPPORT_GENERATOR_URL -> generator_url, etc.
	if err := k.Load(env.Provider("RAPPORT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "RAPPORT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.GeneratorURL == "" {
		return fmt.Errorf("generator_url is required")
	}
	if !strings.HasPrefix(c.GeneratorURL, "http://") && !strings.HasPrefix(c.GeneratorURL, "https://") {
		return fmt.Errorf("generator_url must be an http(s) URL")
	}
	if c.GeneratorTimeoutSec < 0 {
		return fmt.Errorf("generator_timeout_sec must be non-negative")
	}
	if c.SaveDebounceMS < 0 || c.PreviewDebounceMS < 0 {
		return fmt.Errorf("debounce delays must be non-negative")
	}
	if c.MaxChapterLevel < 2 || c.MaxChapterLevel > 3 {
		return fmt.Errorf("max_chapter_level must be 2 or 3")
	}
	if c.RevisionLimit < 1 {
		return fmt.Errorf("revision_limit must be at least 1")
	}
	return nil
}
