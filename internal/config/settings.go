package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppSettings is the live settings record edited through the settings pages.
type AppSettings struct {
	AutoSwitchTheme      bool    `yaml:"auto_switch_theme"`
	DarkMode             bool    `yaml:"dark_mode"`
	CLIPath              string  `yaml:"cli_path"`
	FontFamily           string  `yaml:"font_family"`
	FontSize             float64 `yaml:"font_size"`
	LineHeight           float64 `yaml:"line_height"`
	NotificationsEnabled bool    `yaml:"notifications_enabled"`
	AutoUpdate           bool    `yaml:"auto_update"`
	Resettable           bool    `yaml:"resettable"`
}

// Bounds for the numeric settings.
const (
	MinFontSize   = 8.0
	MaxFontSize   = 72.0
	MinLineHeight = 8.0
	MaxLineHeight = 32.0
)

// DefaultAppSettings returns the record installed on first use
func DefaultAppSettings() AppSettings {
	return AppSettings{
		AutoSwitchTheme:      false,
		DarkMode:             false,
		CLIPath:              "/usr/local/bin/bash",
		FontFamily:           "Arial",
		FontSize:             14,
		LineHeight:           12,
		NotificationsEnabled: true,
		AutoUpdate:           true,
		Resettable:           true,
	}
}

// FontFamilies returns the selectable font families
func FontFamilies() []string {
	return []string{"Arial", "Helvetica", "Times New Roman", "Courier New"}
}

// LoadAppSettings reads a settings record written by Save. Fields missing
// from the file keep their defaults.
func LoadAppSettings(path string) (AppSettings, error) {
	settings := DefaultAppSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultAppSettings(), fmt.Errorf("parsing settings: %w", err)
	}
	return settings, nil
}

// Save writes the settings record to path
func (s AppSettings) Save(path string) error {
	return writeYAML(path, s)
}

// Validate checks the record against the bounds the settings pages enforce
func (s AppSettings) Validate() error {
	if s.FontSize < MinFontSize || s.FontSize > MaxFontSize {
		return fmt.Errorf("font_size %v outside [%v, %v]", s.FontSize, MinFontSize, MaxFontSize)
	}
	if s.LineHeight < MinLineHeight || s.LineHeight > MaxLineHeight {
		return fmt.Errorf("line_height %v outside [%v, %v]", s.LineHeight, MinLineHeight, MaxLineHeight)
	}
	if !containsFold(FontFamilies(), s.FontFamily) {
		return fmt.Errorf("font_family %q is not one of %s", s.FontFamily, strings.Join(FontFamilies(), ", "))
	}
	if strings.TrimSpace(s.CLIPath) == "" {
		return fmt.Errorf("cli_path is required")
	}
	return nil
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
