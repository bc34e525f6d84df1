// Package regform provides the registration form for name, email, and
// password input.
package regform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/registro/internal/ui/styles"
)

// Sentinel is the name-field value that ends the session, compared
// case-insensitively.
const Sentinel = "exit"

// Field identifies which element is focused.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldPassword
	FieldSubmit
)

// SubmitMsg carries one registration attempt. Values are raw input; the
// registry decides acceptance.
type SubmitMsg struct {
	Name     string
	Email    string
	Password string
}

// QuitMsg is sent when the user enters the sentinel name or cancels.
type QuitMsg struct{}

// Model holds the form state.
type Model struct {
	nameInput     textinput.Model
	emailInput    textinput.Model
	passwordInput textinput.Model
	focused       Field
	masked        bool
	width         int
}

// New creates a registration form with focus on the name field.
func New(masked bool) Model {
	placeholderStyle := lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
	textStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)

	name := textinput.New()
	name.PlaceholderStyle = placeholderStyle
	name.TextStyle = textStyle
	name.Placeholder = "Nombre completo"
	name.CharLimit = 80
	name.Width = 40
	name.Prompt = ""
	name.Focus()

	email := textinput.New()
	email.PlaceholderStyle = placeholderStyle
	email.TextStyle = textStyle
	email.Placeholder = "correo@ejemplo.com"
	email.CharLimit = 120
	email.Width = 40
	email.Prompt = ""

	password := textinput.New()
	password.PlaceholderStyle = placeholderStyle
	password.TextStyle = textStyle
	password.Placeholder = "Contraseña"
	password.CharLimit = 120
	password.Width = 40
	password.Prompt = ""
	if masked {
		password.EchoMode = textinput.EchoPassword
		password.EchoCharacter = '•'
	}

	return Model{
		nameInput:     name,
		emailInput:    email,
		passwordInput: password,
		focused:       FieldName,
		masked:        masked,
	}
}

// SetWidth sets the rendered form width.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// SetMasked toggles password echo between bullets and plain text.
func (m Model) SetMasked(masked bool) Model {
	m.masked = masked
	if masked {
		m.passwordInput.EchoMode = textinput.EchoPassword
		m.passwordInput.EchoCharacter = '•'
	} else {
		m.passwordInput.EchoMode = textinput.EchoNormal
	}
	return m
}

// Masked returns whether the password field echoes bullets.
func (m Model) Masked() bool {
	return m.masked
}

// Reset clears all inputs and returns focus to the name field, ready for
// the next registration.
func (m Model) Reset() Model {
	m.nameInput.SetValue("")
	m.emailInput.SetValue("")
	m.passwordInput.SetValue("")
	return m.focus(FieldName)
}

// Focused returns the currently focused field.
func (m Model) Focused() Field {
	return m.focused
}

// Name returns the current name input value.
func (m Model) Name() string {
	return m.nameInput.Value()
}

// Email returns the current email input value.
func (m Model) Email() string {
	return m.emailInput.Value()
}

// Password returns the current password input value.
func (m Model) Password() string {
	return m.passwordInput.Value()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return QuitMsg{} }

		case "tab", "ctrl+n":
			return m.cycleField(false), nil

		case "shift+tab", "ctrl+p":
			return m.cycleField(true), nil

		case "enter":
			switch m.focused {
			case FieldName:
				// The sentinel ends the session without touching the
				// other fields.
				if strings.EqualFold(m.nameInput.Value(), Sentinel) {
					return m, func() tea.Msg { return QuitMsg{} }
				}
				return m.cycleField(false), nil
			case FieldSubmit:
				return m.submit()
			default:
				return m.cycleField(false), nil
			}
		}
	}

	// Forward to focused text input
	switch m.focused {
	case FieldName:
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	case FieldEmail:
		var cmd tea.Cmd
		m.emailInput, cmd = m.emailInput.Update(msg)
		return m, cmd
	case FieldPassword:
		var cmd tea.Cmd
		m.passwordInput, cmd = m.passwordInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// cycleField moves focus to the next/previous field.
func (m Model) cycleField(reverse bool) Model {
	fields := []Field{FieldName, FieldEmail, FieldPassword, FieldSubmit}
	current := 0
	for i, f := range fields {
		if f == m.focused {
			current = i
			break
		}
	}

	if reverse {
		current--
		if current < 0 {
			current = len(fields) - 1
		}
	} else {
		current = (current + 1) % len(fields)
	}

	return m.focus(fields[current])
}

func (m Model) focus(f Field) Model {
	m.focused = f
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.passwordInput.Blur()
	switch f {
	case FieldName:
		m.nameInput.Focus()
	case FieldEmail:
		m.emailInput.Focus()
	case FieldPassword:
		m.passwordInput.Focus()
	}
	return m
}

// submit emits the current values. Input is passed through untouched so the
// shape rules see exactly what was typed.
func (m Model) submit() (Model, tea.Cmd) {
	if strings.EqualFold(m.nameInput.Value(), Sentinel) {
		return m, func() tea.Msg { return QuitMsg{} }
	}
	name := m.nameInput.Value()
	email := m.emailInput.Value()
	password := m.passwordInput.Value()
	return m, func() tea.Msg {
		return SubmitMsg{Name: name, Email: email, Password: password}
	}
}

// View renders the form.
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = 50
	}
	sectionWidth := width - 2

	nameSection := styles.RenderFormSection(
		[]string{m.nameInput.View()},
		"Nombre completo", "'exit' para salir",
		sectionWidth, m.focused == FieldName, styles.BorderFocusColor)

	emailSection := styles.RenderFormSection(
		[]string{m.emailInput.View()},
		"Correo electrónico", "",
		sectionWidth, m.focused == FieldEmail, styles.BorderFocusColor)

	passwordSection := styles.RenderFormSection(
		[]string{m.passwordInput.View()},
		"Contraseña", "",
		sectionWidth, m.focused == FieldPassword, styles.BorderFocusColor)

	submitStyle := styles.PrimaryButtonStyle
	if m.focused == FieldSubmit {
		submitStyle = styles.PrimaryButtonFocusedStyle
	}
	submitButton := submitStyle.Render(" Registrar ")

	contentPadding := lipgloss.NewStyle().PaddingLeft(1)

	return contentPadding.Render(nameSection) + "\n\n" +
		contentPadding.Render(emailSection) + "\n\n" +
		contentPadding.Render(passwordSection) + "\n\n" +
		contentPadding.Render(" "+submitButton) + "\n"
}
