package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"resort-concierge/model"
)

type waiterResult struct {
	Option   model.RequestType
	Details  string
	SunbedID string
}

type waiterChoice struct {
	option model.RequestType
	title  string
	desc   string
}

var waiterChoices = []waiterChoice{
	{option: model.RequestTowel, title: "Towel service", desc: "Fresh towels brought to your sunbed"},
	{option: model.RequestOrder, title: "Place an order", desc: "Drinks and food from the pool bar"},
	{option: model.RequestOther, title: "Other services", desc: "Tell us what you need"},
}

type waiterFocus int

const (
	focusSunbed waiterFocus = iota
	focusOptions
	focusDetails
)

// waiterModal calls a waiter to a sunbed. Without a preset sunbed the guest
// types the sunbed number first.
type waiterModal struct {
	presetSunbed string
	sunbed       textinput.Model
	details      textinput.Model
	focus        waiterFocus
	cursor       int
	chosen       bool
}

func newWaiterModal(presetSunbed string) (*waiterModal, tea.Cmd) {
	sunbed := textinput.New()
	sunbed.Placeholder = "Enter sunbed number (e.g., A12)"
	sunbed.CharLimit = 8
	details := textinput.New()
	details.Placeholder = "Describe what you need..."
	details.CharLimit = 200

	m := &waiterModal{presetSunbed: presetSunbed, sunbed: sunbed, details: details}
	if presetSunbed != "" {
		m.focus = focusOptions
		return m, nil
	}
	m.focus = focusSunbed
	return m, m.sunbed.Focus()
}

func (m *waiterModal) sunbedID() string {
	if m.presetSunbed != "" {
		return m.presetSunbed
	}
	return strings.ToUpper(strings.TrimSpace(m.sunbed.Value()))
}

func (m *waiterModal) option() model.RequestType {
	return waiterChoices[m.cursor].option
}

// ready reports whether the confirm action is enabled.
func (m *waiterModal) ready() bool {
	if m.sunbedID() == "" || !m.chosen {
		return false
	}
	if m.option() == model.RequestOther {
		return strings.TrimSpace(m.details.Value()) != ""
	}
	return true
}

func (m *waiterModal) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.String() == "esc" {
		return closeModal
	}

	switch m.focus {
	case focusSunbed:
		switch key.String() {
		case "enter", "tab", "down":
			if m.sunbedID() == "" {
				return nil
			}
			m.sunbed.Blur()
			m.focus = focusOptions
			return nil
		}
		var cmd tea.Cmd
		m.sunbed, cmd = m.sunbed.Update(key)
		return cmd

	case focusDetails:
		switch key.String() {
		case "enter":
			return m.confirm()
		case "tab", "shift+tab", "up":
			m.details.Blur()
			m.focus = focusOptions
			return nil
		}
		var cmd tea.Cmd
		m.details, cmd = m.details.Update(key)
		return cmd
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(waiterChoices)-1 {
			m.cursor++
		}
	case " ":
		m.chosen = true
	case "shift+tab":
		if m.presetSunbed == "" {
			m.focus = focusSunbed
			return m.sunbed.Focus()
		}
	case "tab":
		if m.chosen && m.option() == model.RequestOther {
			m.focus = focusDetails
			return m.details.Focus()
		}
	case "enter":
		m.chosen = true
		if m.option() == model.RequestOther && strings.TrimSpace(m.details.Value()) == "" {
			m.focus = focusDetails
			return m.details.Focus()
		}
		return m.confirm()
	}
	return nil
}

func (m *waiterModal) confirm() tea.Cmd {
	if !m.ready() {
		return nil
	}
	result := waiterResult{Option: m.option(), SunbedID: m.sunbedID()}
	if result.Option == model.RequestOther {
		result.Details = strings.TrimSpace(m.details.Value())
	}
	return func() tea.Msg { return result }
}

func (m *waiterModal) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Call a Waiter"))
	b.WriteString("\n")
	if m.presetSunbed != "" {
		b.WriteString(hint(fmt.Sprintf("Sunbed %s", m.presetSunbed)))
	} else {
		b.WriteString(hint("Which sunbed are you on?"))
		b.WriteString("\n")
		b.WriteString(m.sunbed.View())
	}
	b.WriteString("\n\n")

	enabled := m.sunbedID() != ""
	for i, choice := range waiterChoices {
		line := fmt.Sprintf("%s %s  %s", radio(m.chosen && i == m.cursor), choice.title, hint(choice.desc))
		if !enabled {
			line = disabledStyle.Render(line)
		}
		b.WriteString(cursorPrefix(m.focus == focusOptions && i == m.cursor) + line + "\n")
	}
	if m.chosen && m.option() == model.RequestOther {
		b.WriteString("\n" + m.details.View() + "\n")
	}

	b.WriteString("\n")
	action := "enter send request"
	if m.chosen && m.option() == model.RequestOrder {
		action = "enter choose items"
	}
	if !enabled {
		action = disabledStyle.Render("enter a sunbed number first")
	}
	b.WriteString(hint("↑/↓ choose • ") + action + hint(" • esc cancel"))
	return panel(width, b.String())
}

func (m *waiterModal) close() {
	m.sunbed.Blur()
	m.details.Blur()
}
