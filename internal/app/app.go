// Package app contains the top-level Bubble Tea model for the
// registration session.
package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/registro/internal/config"
	"github.com/zjrosen/registro/internal/keys"
	"github.com/zjrosen/registro/internal/log"
	"github.com/zjrosen/registro/internal/registry"
	"github.com/zjrosen/registro/internal/ui/regform"
	"github.com/zjrosen/registro/internal/ui/styles"
	"github.com/zjrosen/registro/internal/ui/toaster"
	"github.com/zjrosen/registro/internal/ui/userlist"
)

// Result messages shown after each registration attempt.
const (
	msgAccepted = "Registro exitoso"
	msgRejected = "Datos inválidos. Inténtalo de nuevo."
)

// toastDuration is how long an accept/reject toast stays on screen.
const toastDuration = 2 * time.Second

const formWidth = 52

// Model is the top-level application model.
type Model struct {
	reg      *registry.Registry
	form     regform.Model
	list     userlist.Model
	toast    toaster.Model
	keymap   keys.KeyMap
	width    int
	height   int
	quitting bool
}

// New creates the application model around an existing registry. The
// registry outlives the program so the caller can print the final listing.
func New(reg *registry.Registry, cfg config.Config) Model {
	return Model{
		reg:    reg,
		form:   regform.New(cfg.UI.MaskPassword).SetWidth(formWidth),
		list:   userlist.New(cfg.UI.ShowCount),
		toast:  toaster.New(),
		keymap: keys.DefaultKeyMap(),
	}
}

// MaskPassword returns the current password echo preference, which may have
// been toggled during the session.
func (m Model) MaskPassword() bool {
	return m.form.Masked()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listWidth := max(m.width-formWidth-4, 24)
		listHeight := max(m.height-6, 5)
		m.list = m.list.SetSize(listWidth, listHeight)
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			// Esc goes through the form so an ongoing entry can decide;
			// ctrl+c always ends the session.
			m.quitting = true
			log.Info(log.CatApp, "Session cancelled", "registered", m.reg.Len())
			return m, tea.Quit
		case key.Matches(msg, m.keymap.ToggleMask):
			m.form = m.form.SetMasked(!m.form.Masked())
			return m, nil
		case key.Matches(msg, m.keymap.ScrollUp):
			m.list = m.list.ScrollUp()
			return m, nil
		case key.Matches(msg, m.keymap.ScrollDown):
			m.list = m.list.ScrollDown()
			return m, nil
		}

	case regform.SubmitMsg:
		if m.reg.Register(msg.Name, msg.Email, msg.Password) {
			log.Info(log.CatRegistry, "Registration accepted", "total", m.reg.Len())
			m.form = m.form.Reset()
			m.list = m.list.SetUsers(m.reg.Users())
			m.toast = m.toast.Show(msgAccepted, toaster.StyleSuccess)
		} else {
			// Inputs stay put so the user can correct them.
			log.Debug(log.CatRegistry, "Registration rejected")
			m.toast = m.toast.Show(msgRejected, toaster.StyleError)
		}
		return m, toaster.HideAfter(toastDuration)

	case regform.QuitMsg:
		m.quitting = true
		log.Info(log.CatApp, "Session ended", "registered", m.reg.Len())
		return m, tea.Quit

	case toaster.HideMsg:
		m.toast = m.toast.Hide()
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		// The final listing is printed to stdout by cmd after the
		// program exits.
		return ""
	}

	title := styles.TitleStyle.Render("=== Registro de Usuarios ===")
	help := styles.HintStyle.Render(fmt.Sprintf(
		"%s: campo siguiente • %s: enviar • %s: mostrar contraseña • %s: salir",
		m.keymap.NextField.Help().Key,
		m.keymap.Submit.Help().Key,
		m.keymap.ToggleMask.Help().Key,
		m.keymap.Quit.Help().Key,
	))

	toastLine := ""
	if m.toast.Visible() {
		toastLine = m.toast.View()
	}

	left := m.form.View()
	if toastLine != "" {
		left += "\n" + lipgloss.NewStyle().PaddingLeft(1).Render(toastLine)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.list.View())

	return "\n " + title + "\n\n" + body + "\n " + help + "\n"
}
