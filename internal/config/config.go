// Package config provides configuration management for sdd.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sdd-agents/sdd/internal/prompt"
)

// CurrentSchemaVersion is the latest config schema version.
// Increment this when adding new config fields that need migration.
const CurrentSchemaVersion = 2

// HomeEnv overrides the config directory (default ~/.sdd).
const HomeEnv = "SDD_HOME"

// Config represents the sdd configuration structure.
type Config struct {
	SchemaVersion int           `yaml:"schema_version" json:"schema_version"`
	Prompt        PromptConfig  `yaml:"prompt"`
	Install       InstallConfig `yaml:"install"`
}

// PromptConfig controls how migrations ask the operator.
type PromptConfig struct {
	Mode          string `yaml:"mode"`           // auto | line | survey
	DefaultAnswer string `yaml:"default_answer"` // yes | no (or y | n, any case); set = non-interactive
}

// InstallConfig controls template installation.
type InstallConfig struct {
	SymlinkSpecs *bool `yaml:"symlink_specs"` // Link docs/specs/CLAUDE.md (default: true)
	Force        bool  `yaml:"force"`         // Overwrite existing files on init
}

// IsSymlinkSpecs returns whether spec links are enabled (default: true).
func (i InstallConfig) IsSymlinkSpecs() bool {
	if i.SymlinkSpecs == nil {
		return true
	}
	return *i.SymlinkSpecs
}

// PromptOptions converts the prompt section for prompt.New.
func (c *Config) PromptOptions() prompt.Options {
	return prompt.Options{
		Mode:          c.Prompt.Mode,
		DefaultAnswer: c.Prompt.DefaultAnswer,
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Prompt.Mode {
	case "", prompt.ModeAuto, prompt.ModeLine, prompt.ModeSurvey:
	default:
		return fmt.Errorf("prompt.mode: invalid value %q (want auto, line or survey)", c.Prompt.Mode)
	}
	switch strings.ToLower(c.Prompt.DefaultAnswer) {
	case "", "y", "yes", "n", "no":
	default:
		return fmt.Errorf("prompt.default_answer: invalid value %q (want yes or no)", c.Prompt.DefaultAnswer)
	}
	return nil
}

// Dir returns the config directory: $SDD_HOME, or ~/.sdd.
func Dir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".sdd"), nil
}

// ConfigPath returns the path to the config file (~/.sdd/config.yaml).
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads and parses the config file.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads and parses the config at path. A missing file yields defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return Default(), nil
		}
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}

	// Apply defaults for missing sections
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyDefaults fills in zero values with sensible defaults.
func (c *Config) applyDefaults() {
	if c.Prompt.Mode == "" {
		c.Prompt.Mode = prompt.ModeLine
	}
}

// Save writes config back to file.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes config to path.
func (c *Config) SaveFile(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("cannot serialize config: %w", err)
	}

	// Add header comment
	header := "# sdd configuration\n\n"
	content := header + string(data)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}

	return nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Prompt:        DefaultPromptConfig(),
		Install: InstallConfig{
			SymlinkSpecs: boolPtr(true),
		},
	}
}

// DefaultPromptConfig returns default prompt settings.
func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		Mode: prompt.ModeLine, // keeps the plain (Y/n) line protocol
	}
}

func boolPtr(b bool) *bool {
	return &b
}
