// Package config handles configuration loading and validation for nohrs
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppName names the per-user configuration directory.
	AppName = "nohrs"

	// ConfigFileName is the host configuration file.
	ConfigFileName = "nohrs.yaml"

	// StateFileName is the file used when settings persistence is enabled.
	StateFileName = "settings.yaml"
)

// Config represents the host configuration for nohrs
type Config struct {
	UI    UIConfig    `yaml:"ui"`
	State StateConfig `yaml:"state"`
}

// UIConfig holds terminal presentation preferences
type UIConfig struct {
	Theme   string `yaml:"theme"`
	Dense   bool   `yaml:"dense"`
	NoColor bool   `yaml:"no_color"`
}

// StateConfig controls settings persistence between runs
type StateConfig struct {
	Persist bool   `yaml:"persist"`
	Path    string `yaml:"path,omitempty"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "aurora",
		},
		State: StateConfig{
			Persist: false,
		},
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	return writeYAML(path, c)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.UI.Theme) == "" {
		return fmt.Errorf("ui.theme is required")
	}
	if c.State.Path != "" && !filepath.IsAbs(ExpandHome(c.State.Path)) {
		return fmt.Errorf("state.path must be absolute, got %q", c.State.Path)
	}
	return nil
}

// StatePath returns the file settings are persisted to.
func (c *Config) StatePath() (string, error) {
	if c.State.Path != "" {
		return ExpandHome(c.State.Path), nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StateFileName), nil
}

// ConfigDir returns the per-user nohrs configuration directory
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// GetConfigPath returns the path to nohrs.yaml in the user config directory
func GetConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LoadDefault loads configuration from the user config directory
func LoadDefault() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
