// Package toaster provides a notification toast component for
// registration results.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/registro/internal/ui/styles"
)

// Style determines the visual appearance of the toast.
type Style int

const (
	// StyleSuccess shows ✔ with a green border.
	StyleSuccess Style = iota
	// StyleError shows ✖ with a red border.
	StyleError
)

// HideMsg dismisses the toast after its display duration elapses.
type HideMsg struct{}

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays a toast with the given message and style. The matching mark
// is prepended automatically: ✔ success, ✖ error.
func (m Model) Show(message string, style Style) Model {
	m.message = message
	m.style = style
	m.visible = true
	return m
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// HideAfter returns a command that dismisses the toast after d.
func HideAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return HideMsg{}
	})
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var content string
	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.StatusErrorColor)
		content = "✖ " + m.message
	default:
		style = style.BorderForeground(styles.StatusSuccessColor)
		content = "✔ " + m.message
	}

	return style.Render(content)
}
