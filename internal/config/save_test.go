package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveUI_CreatesNewFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	err := SaveUI(configPath, UIConfig{ShowCount: true, MaskPassword: false})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "show_count: true")
	assert.Contains(t, string(data), "mask_password: false")
}

func TestSaveUI_PreservesOtherConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	initial := `# my tweaks
debug: true
theme:
  highlight: "#FF0000"
ui:
  show_count: false
  mask_password: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(initial), 0o600))

	err := SaveUI(configPath, UIConfig{ShowCount: false, MaskPassword: false})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# my tweaks", "comments outside the ui section survive")
	assert.Contains(t, content, "debug: true")
	assert.Contains(t, content, "#FF0000")
	assert.Contains(t, content, "mask_password: false")

	// The result still unmarshals cleanly.
	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())
	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.UI.ShowCount)
	assert.False(t, cfg.UI.MaskPassword)
}

func TestSaveUI_ReplacesExistingUISection(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	require.NoError(t, SaveUI(configPath, UIConfig{ShowCount: true, MaskPassword: true}))
	require.NoError(t, SaveUI(configPath, UIConfig{ShowCount: true, MaskPassword: false}))

	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())
	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	assert.True(t, cfg.UI.ShowCount)
	assert.False(t, cfg.UI.MaskPassword)
}
