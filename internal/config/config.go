// Package config loads wordcheck settings from a YAML file and merges them
// with defaults and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DirName is the per-project directory holding wordcheck files
const DirName = ".wordcheck"

// FileName is the config file name inside DirName
const FileName = "config.yaml"

// Config represents wordcheck configuration options
type Config struct {
	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables per-run log files in this directory when non-empty
	LogDir string `yaml:"log_dir"`

	// Color colorizes the report when stdout is a terminal
	Color bool `yaml:"color"`

	// ExcludeDirs lists directory base names traversal never enters
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// MaxDepth limits traversal depth (0 = unlimited)
	MaxDepth int `yaml:"max_depth"`

	// MaxLineBytes is the longest accepted line (0 = scanner default)
	MaxLineBytes int `yaml:"max_line_bytes"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		LogDir:       "",
		Color:        true,
		ExcludeDirs:  nil,
		MaxDepth:     0, // Unlimited
		MaxLineBytes: 0, // Scanner default
	}
}

// DefaultPath returns the config path used when --config is not given
func DefaultPath(dir string) string {
	return filepath.Join(dir, DirName, FileName)
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlCfg Config
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Booleans and zero values can be set explicitly, so merge by key presence
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, exists := rawMap["log_level"]; exists {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(yamlCfg.LogLevel))
	}
	if _, exists := rawMap["log_dir"]; exists {
		cfg.LogDir = yamlCfg.LogDir
	}
	if _, exists := rawMap["color"]; exists {
		cfg.Color = yamlCfg.Color
	}
	if _, exists := rawMap["exclude_dirs"]; exists {
		cfg.ExcludeDirs = yamlCfg.ExcludeDirs
	}
	if _, exists := rawMap["max_depth"]; exists {
		cfg.MaxDepth = yamlCfg.MaxDepth
	}
	if _, exists := rawMap["max_line_bytes"]; exists {
		cfg.MaxLineBytes = yamlCfg.MaxLineBytes
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .wordcheck/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(DefaultPath(dir))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(logLevel *string, logDir *string, noColor *bool, excludeDirs []string, maxDepth *int) {
	if logLevel != nil {
		c.LogLevel = strings.ToLower(strings.TrimSpace(*logLevel))
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if noColor != nil {
		c.Color = !*noColor
	}
	if excludeDirs != nil {
		c.ExcludeDirs = excludeDirs
	}
	if maxDepth != nil {
		c.MaxDepth = *maxDepth
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.MaxDepth)
	}

	if c.MaxLineBytes < 0 {
		return fmt.Errorf("max_line_bytes must be >= 0, got %d", c.MaxLineBytes)
	}

	for _, name := range c.ExcludeDirs {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("exclude_dirs entries cannot be empty")
		}
		if strings.ContainsRune(name, filepath.Separator) {
			return fmt.Errorf("exclude_dirs entry %q must be a directory name, not a path", name)
		}
	}

	return nil
}
