package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogDir != "" {
		t.Errorf("LogDir = %q, want empty", cfg.LogDir)
	}
	if !cfg.Color {
		t.Error("Color = false, want true")
	}
	if cfg.ExcludeDirs != nil {
		t.Errorf("ExcludeDirs = %v, want nil", cfg.ExcludeDirs)
	}
	if cfg.MaxDepth != 0 {
		t.Errorf("MaxDepth = %d, want 0", cfg.MaxDepth)
	}
	if cfg.MaxLineBytes != 0 {
		t.Errorf("MaxLineBytes = %d, want 0", cfg.MaxLineBytes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	configPath := writeConfig(t, `log_level: debug
log_dir: /tmp/logs
color: false
exclude_dirs:
  - .git
  - node_modules
max_depth: 3
max_line_bytes: 4096
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogDir != "/tmp/logs" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/tmp/logs")
	}
	if cfg.Color {
		t.Error("Color = true, want false")
	}
	if !reflect.DeepEqual(cfg.ExcludeDirs, []string{".git", "node_modules"}) {
		t.Errorf("ExcludeDirs = %v", cfg.ExcludeDirs)
	}
	if cfg.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, want 3", cfg.MaxDepth)
	}
	if cfg.MaxLineBytes != 4096 {
		t.Errorf("MaxLineBytes = %d, want 4096", cfg.MaxLineBytes)
	}
}

// TestLoadConfigPartialFile verifies unset keys keep their defaults
func TestLoadConfigPartialFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "max_depth: 2\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", cfg.MaxDepth)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.LogLevel)
	}
	if !cfg.Color {
		t.Error("Color should keep default true")
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

// TestLoadConfigMalformed tests error handling for invalid YAML
func TestLoadConfigMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "broken syntax", content: "log_level: [debug\n"},
		{name: "wrong type", content: "max_depth: deep\n"},
		{name: "list as scalar", content: "exclude_dirs: 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("LoadConfig() should error on malformed YAML")
			}
			if !strings.Contains(err.Error(), "failed to parse config file") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfigFromDir(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		cfg, err := LoadConfigFromDir(t.TempDir())
		if err != nil {
			t.Fatalf("LoadConfigFromDir() error = %v", err)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
		}
	})

	t.Run("reads .wordcheck/config.yaml", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, DirName), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(DefaultPath(dir), []byte("log_level: warn\n"), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfigFromDir(dir)
		if err != nil {
			t.Fatalf("LoadConfigFromDir() error = %v", err)
		}
		if cfg.LogLevel != "warn" {
			t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
		}
	})
}

// TestMergeWithFlags verifies CLI flags override config file values
func TestMergeWithFlags(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }
	intPtr := func(i int) *int { return &i }

	t.Run("nil flags keep file values", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LogLevel = "debug"
		cfg.ExcludeDirs = []string{".git"}
		cfg.MaxDepth = 4

		cfg.MergeWithFlags(nil, nil, nil, nil, nil)

		if cfg.LogLevel != "debug" || cfg.MaxDepth != 4 || !cfg.Color {
			t.Errorf("config changed without flags: %+v", cfg)
		}
		if !reflect.DeepEqual(cfg.ExcludeDirs, []string{".git"}) {
			t.Errorf("ExcludeDirs = %v", cfg.ExcludeDirs)
		}
	})

	t.Run("set flags override", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LogLevel = "debug"
		cfg.ExcludeDirs = []string{".git"}

		cfg.MergeWithFlags(strPtr("ERROR"), strPtr("/var/log/wc"), boolPtr(true), []string{"vendor"}, intPtr(1))

		if cfg.LogLevel != "error" {
			t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
		}
		if cfg.LogDir != "/var/log/wc" {
			t.Errorf("LogDir = %q", cfg.LogDir)
		}
		if cfg.Color {
			t.Error("--no-color should disable Color")
		}
		if !reflect.DeepEqual(cfg.ExcludeDirs, []string{"vendor"}) {
			t.Errorf("ExcludeDirs = %v", cfg.ExcludeDirs)
		}
		if cfg.MaxDepth != 1 {
			t.Errorf("MaxDepth = %d, want 1", cfg.MaxDepth)
		}
	})

	t.Run("explicit false no-color re-enables color", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Color = false
		cfg.MergeWithFlags(nil, nil, boolPtr(false), nil, nil)
		if !cfg.Color {
			t.Error("Color = false, want true")
		}
	})
}

// TestValidate checks each validation rule
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "trace level", mutate: func(c *Config) { c.LogLevel = "trace" }},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log_level"},
		{name: "negative depth", mutate: func(c *Config) { c.MaxDepth = -1 }, wantErr: "max_depth must be >= 0"},
		{name: "negative line bytes", mutate: func(c *Config) { c.MaxLineBytes = -1 }, wantErr: "max_line_bytes must be >= 0"},
		{name: "empty exclude", mutate: func(c *Config) { c.ExcludeDirs = []string{" "} }, wantErr: "cannot be empty"},
		{name: "exclude path", mutate: func(c *Config) { c.ExcludeDirs = []string{"a" + string(filepath.Separator) + "b"} }, wantErr: "must be a directory name"},
		{name: "exclude names", mutate: func(c *Config) { c.ExcludeDirs = []string{".git", "vendor"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
