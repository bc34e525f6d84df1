package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	require.Equal(t, []string{"tab", "ctrl+n"}, km.NextField.Keys())
	require.Equal(t, []string{"shift+tab", "ctrl+p"}, km.PrevField.Keys())
	require.Equal(t, []string{"enter"}, km.Submit.Keys())
	require.Equal(t, []string{"ctrl+r"}, km.ToggleMask.Keys())
	require.Equal(t, []string{"esc", "ctrl+c"}, km.Quit.Keys())
}

func TestDefaultKeyMap_HelpText(t *testing.T) {
	km := DefaultKeyMap()

	for name, b := range map[string]key.Binding{
		"NextField":  km.NextField,
		"PrevField":  km.PrevField,
		"Submit":     km.Submit,
		"ToggleMask": km.ToggleMask,
		"ScrollUp":   km.ScrollUp,
		"ScrollDown": km.ScrollDown,
		"Quit":       km.Quit,
	} {
		help := b.Help()
		assert.NotEmpty(t, help.Key, "%s key help should not be empty", name)
		assert.NotEmpty(t, help.Desc, "%s description should not be empty", name)
	}
}

func TestDefaultKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyTab}, km.NextField))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyShiftTab}, km.PrevField))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlR}, km.ToggleMask))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyTab}, km.Submit))
}
