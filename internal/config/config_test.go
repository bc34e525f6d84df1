package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.False(t, cfg.Debug, "debug logging should be off by default")
	assert.True(t, cfg.UI.ShowCount, "count header should be on by default")
	assert.True(t, cfg.UI.MaskPassword, "password echo should be masked by default")
	assert.NotEmpty(t, cfg.Theme.Highlight)
	assert.NotEmpty(t, cfg.Theme.Success)
}

func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, Validate(Defaults()), "defaults must validate")
}

func TestValidate_EmptyColorsAllowed(t *testing.T) {
	cfg := Defaults()
	cfg.Theme = ThemeConfig{}
	assert.NoError(t, Validate(cfg), "empty colors fall back to the built-in palette")
}

func TestValidate_BadColors(t *testing.T) {
	tests := []struct {
		name  string
		color string
	}{
		{"missing hash", "3498DB"},
		{"too short", "#349"},
		{"too long", "#3498DBF"},
		{"non-hex digits", "#3498ZZ"},
		{"word", "blue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.Theme.Error = tt.color
			err := Validate(cfg)
			require.Error(t, err, "expected %q to be rejected", tt.color)
			assert.Contains(t, err.Error(), "theme.error")
		})
	}
}

// The commented template must parse and unmarshal back to the defaults.
func TestDefaultConfigTemplate_RoundTrip(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(DefaultConfigTemplate())))

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	assert.Equal(t, Defaults(), cfg, "template values must match Defaults()")
}

func TestWriteDefaultConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(configPath))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Registro Configuration")
	assert.Contains(t, string(data), "mask_password: true")
}
