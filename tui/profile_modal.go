package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"resort-concierge/service"
)

const profileSaveDelay = time.Second

type profileResult struct {
	Username        string
	PasswordChanged bool
}

const (
	fieldUsername = iota
	fieldCurrentPassword
	fieldNewPassword
	fieldConfirmPassword
	profileFieldCount
)

// profileModal edits the guest's username and password. The username change
// waits on a short cosmetic save delay before it is reported.
type profileModal struct {
	current string
	fields  [profileFieldCount]textinput.Model
	focus   int
	err     error

	saving  bool
	pending string
	spinner spinner.Model
	delay   *ticker
}

func newProfileModal(currentUsername string) (*profileModal, tea.Cmd) {
	m := &profileModal{
		current: currentUsername,
		delay:   newTicker("profile-save", profileSaveDelay),
	}
	placeholders := [profileFieldCount]string{
		"New username",
		"Current password",
		"New password (min 8 characters)",
		"Confirm new password",
	}
	for i := range m.fields {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 64
		if i != fieldUsername {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '•'
		}
		m.fields[i] = input
	}
	m.fields[fieldUsername].SetValue(currentUsername)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m, m.fields[fieldUsername].Focus()
}

func (m *profileModal) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.saving {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case tickMsg:
		if !m.delay.accept(msg) {
			return nil
		}
		m.delay.stop()
		m.saving = false
		username := m.pending
		return func() tea.Msg { return profileResult{Username: username} }
	case tea.KeyMsg:
		if m.saving {
			return nil
		}
		return m.updateKeys(msg)
	}
	return nil
}

func (m *profileModal) updateKeys(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		return closeModal
	case "tab", "down":
		return m.setFocus((m.focus + 1) % profileFieldCount)
	case "shift+tab", "up":
		return m.setFocus((m.focus + profileFieldCount - 1) % profileFieldCount)
	case "enter":
		if m.focus == fieldUsername {
			return m.saveUsername()
		}
		return m.savePassword()
	}
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(key)
	m.err = nil
	return cmd
}

func (m *profileModal) setFocus(i int) tea.Cmd {
	m.fields[m.focus].Blur()
	m.focus = i
	return m.fields[i].Focus()
}

func (m *profileModal) saveUsername() tea.Cmd {
	name, err := service.ValidateUsername(m.current, m.fields[fieldUsername].Value())
	if err != nil {
		m.err = err
		return nil
	}
	m.saving = true
	m.pending = name
	return tea.Batch(m.delay.start(), m.spinner.Tick)
}

func (m *profileModal) savePassword() tea.Cmd {
	err := service.ValidatePasswordChange(
		m.fields[fieldCurrentPassword].Value(),
		m.fields[fieldNewPassword].Value(),
		m.fields[fieldConfirmPassword].Value(),
	)
	if err != nil {
		m.err = err
		return nil
	}
	for _, i := range []int{fieldCurrentPassword, fieldNewPassword, fieldConfirmPassword} {
		m.fields[i].Reset()
	}
	return func() tea.Msg { return profileResult{PasswordChanged: true} }
}

func (m *profileModal) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Profile Settings"))
	b.WriteString("\n\n")
	b.WriteString("Username\n")
	b.WriteString(m.fields[fieldUsername].View())
	b.WriteString("\n")
	if m.saving {
		b.WriteString(m.spinner.View() + " Updating username...")
	} else {
		b.WriteString(hint("enter on this field saves the username"))
	}
	b.WriteString("\n\nChange password\n")
	for _, i := range []int{fieldCurrentPassword, fieldNewPassword, fieldConfirmPassword} {
		b.WriteString(m.fields[i].View())
		b.WriteString("\n")
	}
	if m.passwordMismatch() {
		b.WriteString(warnText("Passwords do not match") + "\n")
	}
	b.WriteString(hint("enter on a password field saves the password"))
	if m.err != nil {
		b.WriteString("\n\n" + errText(capitalize(m.err.Error())))
	}
	b.WriteString("\n\n" + hint("tab next field • esc close"))
	return panel(width, b.String())
}

func (m *profileModal) passwordMismatch() bool {
	confirm := m.fields[fieldConfirmPassword].Value()
	return confirm != "" && confirm != m.fields[fieldNewPassword].Value()
}

func (m *profileModal) close() {
	m.delay.stop()
	m.saving = false
}
