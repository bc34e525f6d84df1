// Package config provides configuration types, defaults, and persistence for registro.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/registro/internal/log"
)

// Config holds all configuration options for registro.
type Config struct {
	Debug bool        `mapstructure:"debug"`
	UI    UIConfig    `mapstructure:"ui"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowCount    bool `mapstructure:"show_count"`    // Show registered-user count in the list header
	MaskPassword bool `mapstructure:"mask_password"` // Echo the password field as bullets
}

// ThemeConfig holds the color overrides. Values are hex colors; empty
// strings fall back to the built-in adaptive palette.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"` // Focused borders and labels
	Subtle    string `mapstructure:"subtle"`    // Hints and help text
	Error     string `mapstructure:"error"`     // Rejection toast and error line
	Success   string `mapstructure:"success"`   // Acceptance toast
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Debug: false,
		UI: UIConfig{
			ShowCount:    true,
			MaskPassword: true,
		},
		Theme: ThemeConfig{
			Highlight: "#3498DB",
			Subtle:    "#696969",
			Error:     "#FF8787",
			Success:   "#73F59F",
		},
	}
}

// Validate checks that configured theme values are usable hex colors.
func Validate(cfg Config) error {
	for name, value := range map[string]string{
		"theme.highlight": cfg.Theme.Highlight,
		"theme.subtle":    cfg.Theme.Subtle,
		"theme.error":     cfg.Theme.Error,
		"theme.success":   cfg.Theme.Success,
	} {
		if value == "" {
			continue
		}
		if err := validateHexColor(value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func validateHexColor(s string) error {
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("invalid hex color %q", s)
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return fmt.Errorf("invalid hex color %q", s)
		}
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Registro Configuration

# Write structured debug logs to registro.log
debug: false

# UI settings
ui:
  show_count: true     # Show registered-user count in the list header
  mask_password: true  # Echo the password field as bullets

# Theme colors (hex). Remove a key to use the built-in palette.
theme:
  highlight: "#3498DB"
  subtle: "#696969"
  error: "#FF8787"
  success: "#73F59F"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
