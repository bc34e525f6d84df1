// Package userlist renders the panel of registered users.
package userlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/registro/internal/registry"
	"github.com/zjrosen/registro/internal/ui/styles"
)

// EmptyMessage is shown when nothing has been registered yet.
const EmptyMessage = "No hay usuarios registrados."

// Model holds the user list state.
type Model struct {
	viewport  viewport.Model
	users     []registry.User
	showCount bool
	width     int
	height    int
}

// New creates an empty user list.
func New(showCount bool) Model {
	return Model{
		viewport:  viewport.New(0, 0),
		showCount: showCount,
	}
}

// SetSize sets the panel dimensions and reflows the content.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	// Room for the section border rows and columns
	m.viewport.Width = max(width-2, 1)
	m.viewport.Height = max(height-2, 1)
	m.viewport.SetContent(m.content())
	return m
}

// SetUsers replaces the listed users and scrolls to the newest entry.
func (m Model) SetUsers(users []registry.User) Model {
	m.users = users
	m.viewport.SetContent(m.content())
	m.viewport.GotoBottom()
	return m
}

// ScrollUp scrolls the list up one row.
func (m Model) ScrollUp() Model {
	m.viewport.ScrollUp(1)
	return m
}

// ScrollDown scrolls the list down one row.
func (m Model) ScrollDown() Model {
	m.viewport.ScrollDown(1)
	return m
}

// Count returns the number of listed users.
func (m Model) Count() int {
	return len(m.users)
}

func (m Model) content() string {
	if len(m.users) == 0 {
		return styles.HintStyle.Render(EmptyMessage)
	}
	rows := make([]string, len(m.users))
	for i, u := range m.users {
		row := u.String()
		rows[i] = ansi.Truncate(row, max(m.viewport.Width, 1), "…")
	}
	return strings.Join(rows, "\n")
}

// View renders the bordered panel.
func (m Model) View() string {
	title := "Usuarios registrados"
	hint := ""
	if m.showCount {
		hint = fmt.Sprintf("%d", len(m.users))
	}

	rows := strings.Split(m.viewport.View(), "\n")
	return styles.RenderFormSection(rows, title, hint, m.width, false, styles.BorderFocusColor)
}
