package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestRenderFormSection(t *testing.T) {
	focusColor := lipgloss.Color("#54A0FF")

	tests := []struct {
		name    string
		content []string
		title   string
		hint    string
		width   int
	}{
		{"titled with hint", []string{"row"}, "Nombre completo", "'exit' para salir", 40},
		{"titled no hint", []string{"row"}, "Contraseña", "", 40},
		{"untitled", []string{"row"}, "", "", 30},
		{"multiple rows", []string{"one", "two", "three"}, "Lista", "", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderFormSection(tt.content, tt.title, tt.hint, tt.width, false, focusColor)

			lines := strings.Split(out, "\n")
			assert.Equal(t, len(tt.content)+2, len(lines), "expected top border, content rows, bottom border")
			if tt.title != "" {
				assert.Contains(t, lines[0], tt.title, "title belongs in the top border")
			}
			if tt.hint != "" {
				assert.Contains(t, lines[0], tt.hint, "hint belongs in the top border")
			}
			for i, row := range tt.content {
				assert.Contains(t, lines[i+1], row, "content row %d preserved", i)
			}
		})
	}
}

func TestRenderFormSection_FocusChangesColor(t *testing.T) {
	// Force ANSI color output in test environment
	lipgloss.SetColorProfile(termenv.ANSI256)

	content := []string{"Content"}
	focusColor := lipgloss.Color("#54A0FF")

	unfocused := RenderFormSection(content, "Test", "", 30, false, focusColor)
	focused := RenderFormSection(content, "Test", "", 30, true, focusColor)

	assert.NotEqual(t, unfocused, focused, "focus must change the border color")
}
