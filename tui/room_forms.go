package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"resort-concierge/service"
)

type roomService string

const (
	roomHousekeeping roomService = "housekeeping"
	roomFood         roomService = "food"
	roomDoNotDisturb roomService = "dnd"
	roomQuestions    roomService = "questions"
	roomProblem      roomService = "problem"
	roomOther        roomService = "other"
	roomLateCheckout roomService = "late-checkout"
	roomCharges      roomService = "charges"
)

type formChoice struct {
	value string
	label string
}

// roomFormSpec describes one room service form.
type roomFormSpec struct {
	title        string
	description  string
	choicesLabel string
	choices      []formChoice
	textLabel    string
	placeholder  string
	textRequired bool
	note         string
	submit       string
}

var roomForms = map[roomService]roomFormSpec{
	roomHousekeeping: {
		title:        "Housekeeping Request",
		description:  "Select the type of cleaning service you need",
		choicesLabel: "Cleaning Type",
		choices: []formChoice{
			{value: "full", label: "Full cleaning"},
			{value: "refresh", label: "Quick refresh"},
			{value: "towels", label: "Fresh towels only"},
			{value: "bedding", label: "Change bedding"},
		},
		textLabel:   "Additional Notes (Optional)",
		placeholder: "Any specific requests or areas to focus on...",
		submit:      "Submit Request",
	},
	roomFood: {
		title:        "Room Service Order",
		description:  "Describe what you'd like to order",
		textLabel:    "Your Order",
		placeholder:  "E.g., Caesar salad, grilled salmon with vegetables, sparkling water...",
		textRequired: true,
		note:         "You can also call room service directly at extension 2301",
		submit:       "Send Order Request",
	},
	roomDoNotDisturb: {
		title:       "Do Not Disturb",
		description: "Set up quiet hours for your room",
		submit:      "Save",
	},
	roomQuestions: {
		title:        "Ask a Question",
		description:  "Our concierge will get back to you shortly",
		textLabel:    "Your Question",
		placeholder:  "What would you like to know?",
		textRequired: true,
		submit:       "Send Question",
	},
	roomProblem: {
		title:        "Report a Problem",
		description:  "Let us know what needs attention",
		choicesLabel: "Problem Type",
		choices: []formChoice{
			{value: "maintenance", label: "Maintenance"},
			{value: "cleanliness", label: "Cleanliness"},
			{value: "amenities", label: "Amenities"},
			{value: "noise", label: "Noise"},
			{value: "other", label: "Other"},
		},
		textLabel:    "Description",
		placeholder:  "Please describe the problem...",
		textRequired: true,
		submit:       "Submit Report",
	},
	roomOther: {
		title:        "Other Services",
		description:  "Request any other room service",
		textLabel:    "Your Request",
		placeholder:  "Describe what you need...",
		textRequired: true,
		submit:       "Submit Request",
	},
	roomLateCheckout: {
		title:        "Late Checkout",
		description:  "Standard checkout is at 11:00",
		choicesLabel: "Check out by",
		choices: []formChoice{
			{value: "12:00", label: "12:00"},
			{value: "13:00", label: "13:00"},
			{value: "14:00", label: "14:00"},
		},
		submit: "Request Late Checkout",
	},
}

type roomFormResult struct {
	Service roomService
	Choice  formChoice
	Text    string
	DND     service.DoNotDisturb
}

const (
	roomFocusChoices = iota
	roomFocusText
	roomFocusFrom
	roomFocusUntil
)

// roomForm is the single modal behind every room service form. Which fields
// it shows comes from its roomFormSpec.
type roomForm struct {
	service roomService
	spec    roomFormSpec
	choice  int
	text    textarea.Model
	focus   int

	dnd   service.DoNotDisturb
	from  textinput.Model
	until textinput.Model
	err   error
}

func newRoomForm(svc roomService, dnd service.DoNotDisturb) (*roomForm, tea.Cmd) {
	spec := roomForms[svc]
	m := &roomForm{service: svc, spec: spec, dnd: dnd}

	m.text = textarea.New()
	m.text.Placeholder = spec.placeholder
	m.text.ShowLineNumbers = false
	m.text.SetHeight(3)
	m.text.SetWidth(56)
	m.text.CharLimit = 500

	m.from = clockInput(dnd.From)
	m.until = clockInput(dnd.Until)

	switch {
	case svc == roomDoNotDisturb:
		m.focus = roomFocusFrom
		return m, m.from.Focus()
	case len(spec.choices) > 0:
		m.focus = roomFocusChoices
		return m, nil
	default:
		m.focus = roomFocusText
		return m, m.text.Focus()
	}
}

func clockInput(value string) textinput.Model {
	input := textinput.New()
	input.Placeholder = "HH:MM"
	input.CharLimit = 5
	input.Width = 6
	input.SetValue(value)
	return input
}

// focusOrder lists the focusable fields of this form.
func (m *roomForm) focusOrder() []int {
	if m.service == roomDoNotDisturb {
		return []int{roomFocusFrom, roomFocusUntil}
	}
	var order []int
	if len(m.spec.choices) > 0 {
		order = append(order, roomFocusChoices)
	}
	if m.spec.textLabel != "" {
		order = append(order, roomFocusText)
	}
	return order
}

func (m *roomForm) ready() bool {
	if m.service == roomDoNotDisturb {
		return m.pendingDND().Validate() == nil
	}
	return !m.spec.textRequired || strings.TrimSpace(m.text.Value()) != ""
}

func (m *roomForm) pendingDND() service.DoNotDisturb {
	return service.DoNotDisturb{
		Enabled: m.dnd.Enabled,
		From:    strings.TrimSpace(m.from.Value()),
		Until:   strings.TrimSpace(m.until.Value()),
	}
}

func (m *roomForm) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "esc":
		return closeModal
	case "ctrl+s":
		return m.submit()
	case "tab":
		return m.cycleFocus(1)
	case "shift+tab":
		return m.cycleFocus(-1)
	}

	switch m.focus {
	case roomFocusChoices:
		switch key.String() {
		case "up", "k":
			if m.choice > 0 {
				m.choice--
			}
		case "down", "j":
			if m.choice < len(m.spec.choices)-1 {
				m.choice++
			}
		case "enter":
			return m.submit()
		}
		return nil
	case roomFocusText:
		var cmd tea.Cmd
		m.text, cmd = m.text.Update(key)
		return cmd
	case roomFocusFrom, roomFocusUntil:
		if key.String() == "enter" {
			return m.submit()
		}
		var cmd tea.Cmd
		if m.focus == roomFocusFrom {
			m.from, cmd = m.from.Update(key)
		} else {
			m.until, cmd = m.until.Update(key)
		}
		m.err = nil
		return cmd
	}
	return nil
}

func (m *roomForm) cycleFocus(step int) tea.Cmd {
	order := m.focusOrder()
	if len(order) < 2 {
		return nil
	}
	current := 0
	for i, f := range order {
		if f == m.focus {
			current = i
		}
	}
	m.text.Blur()
	m.from.Blur()
	m.until.Blur()
	m.focus = order[(current+step+len(order))%len(order)]
	switch m.focus {
	case roomFocusText:
		return m.text.Focus()
	case roomFocusFrom:
		return m.from.Focus()
	case roomFocusUntil:
		return m.until.Focus()
	}
	return nil
}

func (m *roomForm) submit() tea.Cmd {
	if m.service == roomDoNotDisturb {
		dnd := m.pendingDND()
		if err := dnd.Validate(); err != nil {
			m.err = err
			return nil
		}
		dnd.Enabled = !m.dnd.Enabled
		return func() tea.Msg { return roomFormResult{Service: m.service, DND: dnd} }
	}
	if !m.ready() {
		return nil
	}
	result := roomFormResult{Service: m.service, Text: strings.TrimSpace(m.text.Value())}
	if len(m.spec.choices) > 0 {
		result.Choice = m.spec.choices[m.choice]
	}
	return func() tea.Msg { return result }
}

func (m *roomForm) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.spec.title))
	b.WriteString("\n")
	b.WriteString(hint(m.spec.description))
	b.WriteString("\n\n")

	if m.service == roomDoNotDisturb {
		b.WriteString(m.dndView())
	}
	if len(m.spec.choices) > 0 {
		b.WriteString(m.spec.choicesLabel + "\n")
		for i, choice := range m.spec.choices {
			b.WriteString(cursorPrefix(m.focus == roomFocusChoices && i == m.choice) + radio(i == m.choice) + " " + choice.label + "\n")
		}
		b.WriteString("\n")
	}
	if m.spec.textLabel != "" {
		b.WriteString(m.spec.textLabel + "\n")
		b.WriteString(m.text.View())
		b.WriteString("\n")
	}
	if m.spec.note != "" {
		b.WriteString(hint(m.spec.note) + "\n")
	}
	if m.err != nil {
		b.WriteString(errText(capitalize(m.err.Error())) + "\n")
	}

	b.WriteString("\n")
	submit := "ctrl+s " + strings.ToLower(m.submitLabel())
	if !m.ready() {
		submit = disabledStyle.Render(submit)
	}
	b.WriteString(submit + hint(" • tab next field • esc cancel"))
	return panel(width, b.String())
}

func (m *roomForm) submitLabel() string {
	if m.service != roomDoNotDisturb {
		return m.spec.submit
	}
	if m.dnd.Enabled {
		return "Deactivate Do Not Disturb"
	}
	return "Activate Do Not Disturb"
}

func (m *roomForm) dndView() string {
	status := chip("Inactive", mutedColor)
	if m.dnd.Enabled {
		status = chip("Active", successColor)
	}
	return "Status " + status + "  " + hint(m.dnd.Summary()) + "\n\n" +
		"From  " + m.from.View() + "\n" +
		"Until " + m.until.View() + "\n\n"
}

func (m *roomForm) close() {
	m.text.Blur()
	m.from.Blur()
	m.until.Blur()
}
