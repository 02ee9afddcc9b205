package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"resort-concierge/model"
	"resort-concierge/service"
)

// modal is a self-contained form drawn over a page. It reports its outcome
// as a result message and asks to be dismissed with closeModalMsg; the page
// calls close on dismissal so the modal can stop its tickers.
type modal interface {
	Update(msg tea.Msg) tea.Cmd
	View(width int) string
	close()
}

type closeModalMsg struct{}

func closeModal() tea.Msg {
	return closeModalMsg{}
}

// infoModal is a read-only, scrollable text panel.
type infoModal struct {
	title string
	body  string
	vp    viewport.Model
}

func newInfoModal(title string, body string) *infoModal {
	vp := viewport.New(72, 16)
	vp.SetContent(body)
	return &infoModal{title: title, body: body, vp: vp}
}

func (m *infoModal) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "enter", "q":
			return closeModal
		}
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return cmd
}

func (m *infoModal) View(width int) string {
	if width > 12 {
		m.vp.Width = min(width-12, 76)
	}
	body := m.vp.View()
	footer := hint("↑/↓ scroll • esc close")
	if m.vp.TotalLineCount() <= m.vp.Height {
		footer = hint("esc close")
	}
	return panel(width, titleStyle.Render(m.title)+"\n\n"+body+"\n\n"+footer)
}

func (m *infoModal) close() {}

func newFAQModal() *infoModal {
	return newInfoModal("Frequently Asked Questions", faqBody())
}

type faqEntry struct {
	question string
	answer   []string
}

var faqEntries = []faqEntry{
	{
		question: "How do I book a sunbed?",
		answer: []string{
			"Check the counts in the Sunbed Status strip.",
			"Press b to open the booking form and browse sunbeds by zone.",
			"Type / to search by id, or toggle zones with the number keys.",
			"Select up to your quota and press enter to confirm.",
		},
	},
	{
		question: "How can I order food and drinks?",
		answer: []string{
			"Press o to open the menu and switch between Drinks and Food with tab.",
			"Select items with space and adjust quantities with + and -.",
			"Choose Card, Cash (pay on delivery) or Room (added to your hotel bill).",
		},
	},
	{
		question: "How do I call a waiter?",
		answer: []string{
			"Press w and pick towel service, an order or another service.",
			"Track the request in your notifications (ctrl+n).",
			"You will be notified when staff complete it.",
		},
	},
	{
		question: "How do I manage my sunbed bookings?",
		answer: []string{
			"Active bookings show their remaining time.",
			"Press e in the last five minutes to add 30 minutes.",
			"Press r to release a sunbed early.",
		},
	},
	{
		question: "What do the availability statuses mean?",
		answer: []string{
			"Available: ready to book now.",
			"Occupied: currently in use.",
			"Coming soon: will be available soon, press c for details.",
		},
	},
}

func faqBody() string {
	var b strings.Builder
	for i, entry := range faqEntries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(entry.question))
		b.WriteString("\n")
		for _, line := range entry.answer {
			b.WriteString("  • " + line + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

var plannedActivities = []string{
	"Excursions: beach tours, boat trips and island adventures",
	"Spa & Wellness: massages, facials and relaxation treatments",
	"Sports: tennis, water sports and fitness classes",
	"Kids Club: supervised games and crafts for ages 4 to 12",
	"Entertainment: shows, activities and special events",
}

func newActivitiesModal() *infoModal {
	lines := []string{"We're working hard to bring you an amazing selection of activities and services:", ""}
	for _, activity := range plannedActivities {
		lines = append(lines, "  • "+activity)
	}
	lines = append(lines, "", hint("In the meantime, please contact our concierge desk for booking assistance."))
	return newInfoModal("Hotel Activities - Coming Soon!", strings.Join(lines, "\n"))
}

func newComingSoonModal(sunbeds []model.Sunbed) *infoModal {
	if len(sunbeds) == 0 {
		return newInfoModal("Coming Soon", "No sunbeds are waiting to open.")
	}
	lines := make([]string, 0, len(sunbeds))
	for _, group := range service.GroupByZone(sunbeds) {
		lines = append(lines, titleStyle.Render(group.Zone))
		for _, sunbed := range group.Sunbeds {
			note := sunbed.Description
			if note == "" {
				note = "Available soon"
			}
			lines = append(lines, fmt.Sprintf("  %s  %s", sunbed.ID, hint(note)))
		}
	}
	return newInfoModal("Coming Soon", strings.Join(lines, "\n"))
}

func newChargesModal(ledger *service.ChargeLedger, room string) *infoModal {
	charges := ledger.Charges()
	if len(charges) == 0 {
		return newInfoModal("Room Charges", fmt.Sprintf("Nothing has been charged to room %s yet.", room))
	}
	lines := make([]string, 0, len(charges)+2)
	for _, charge := range charges {
		ref := ""
		if charge.Reference != "" {
			ref = hint(" ref " + charge.Reference)
		}
		lines = append(lines, fmt.Sprintf("%s  %-8s %s%s", charge.At.Format("15:04"), service.FormatPrice(charge.Amount), charge.Description, ref))
	}
	lines = append(lines, "", titleStyle.Render(fmt.Sprintf("Total charged to room %s: %s", room, service.FormatPrice(ledger.Total()))))
	return newInfoModal("Room Charges", strings.Join(lines, "\n"))
}

type quickBookResult struct {
	SunbedID string
}

// availableModal lists bookable sunbeds and books one for two hours on enter.
type availableModal struct {
	sunbeds        []model.Sunbed
	remainingQuota int
	cursor         int
}

func newAvailableModal(sunbeds []model.Sunbed, remainingQuota int) *availableModal {
	return &availableModal{sunbeds: sunbeds, remainingQuota: remainingQuota}
}

func (m *availableModal) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "esc", "q":
		return closeModal
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sunbeds)-1 {
			m.cursor++
		}
	case "enter":
		if m.remainingQuota <= 0 || len(m.sunbeds) == 0 {
			return nil
		}
		id := m.sunbeds[m.cursor].ID
		return func() tea.Msg { return quickBookResult{SunbedID: id} }
	}
	return nil
}

func (m *availableModal) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Available Sunbeds (%d)", len(m.sunbeds))))
	b.WriteString("\n\n")
	if len(m.sunbeds) == 0 {
		b.WriteString("Every sunbed is taken right now.\n")
	}
	i := 0
	for _, group := range service.GroupByZone(m.sunbeds) {
		b.WriteString(titleStyle.Render(group.Zone) + "\n")
		for _, sunbed := range group.Sunbeds {
			b.WriteString(cursorPrefix(i == m.cursor) + sunbed.ID + "\n")
			i++
		}
	}
	b.WriteString("\n")
	if m.remainingQuota <= 0 {
		b.WriteString(warnText("Booking quota reached. Release a sunbed to book another.") + "\n")
		b.WriteString(hint("esc close"))
	} else {
		b.WriteString(hint("↑/↓ move • enter book for 2 hours • esc close"))
	}
	return panel(width, b.String())
}

func (m *availableModal) close() {}
