package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"resort-concierge/model"
	"resort-concierge/service"
)

type bookingResult struct {
	SunbedIDs []string
}

// bookingModal picks up to remainingQuota sunbeds from the available ones.
type bookingModal struct {
	available      []model.Sunbed
	remainingQuota int
	zones          []string
	activeZones    []string
	search         textinput.Model
	cursor         int
	selected       []string
}

func newBookingModal(available []model.Sunbed, remainingQuota int) *bookingModal {
	search := textinput.New()
	search.Placeholder = "Search by ID (e.g., A1)"
	search.Prompt = "/ "
	search.CharLimit = 16
	return &bookingModal{
		available:      available,
		remainingQuota: remainingQuota,
		zones:          service.Zones(available),
		search:         search,
	}
}

func (m *bookingModal) multiSelect() bool {
	return m.remainingQuota > 1
}

// rows is the visible sunbeds in display order: grouped by zone.
func (m *bookingModal) rows() []model.Sunbed {
	filtered := service.FilterSunbeds(m.available, m.search.Value(), m.activeZones)
	out := make([]model.Sunbed, 0, len(filtered))
	for _, group := range service.GroupByZone(filtered) {
		out = append(out, group.Sunbeds...)
	}
	return out
}

func (m *bookingModal) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.search.Focused() {
		switch key.String() {
		case "esc", "enter", "down", "tab":
			m.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(key)
		m.clampCursor()
		return cmd
	}

	switch key.String() {
	case "esc":
		return closeModal
	case "/":
		return m.search.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
	case " ", "x":
		rows := m.rows()
		if len(rows) > 0 {
			m.toggle(rows[m.cursor].ID)
		}
	case "c":
		m.search.Reset()
		m.activeZones = nil
		m.clampCursor()
	case "enter":
		if len(m.selected) == 0 {
			return nil
		}
		ids := slices.Clone(m.selected)
		return func() tea.Msg { return bookingResult{SunbedIDs: ids} }
	default:
		if n := zoneKey(key.String()); n > 0 && n <= len(m.zones) {
			m.toggleZone(m.zones[n-1])
		}
	}
	return nil
}

// toggle selects or deselects id. Multi-select stops at the quota; single
// select replaces the previous choice.
func (m *bookingModal) toggle(id string) {
	if i := slices.Index(m.selected, id); i >= 0 {
		m.selected = slices.Delete(m.selected, i, i+1)
		return
	}
	if !m.multiSelect() {
		m.selected = []string{id}
		return
	}
	if len(m.selected) < m.remainingQuota {
		m.selected = append(m.selected, id)
	}
}

func (m *bookingModal) toggleZone(zone string) {
	if i := slices.Index(m.activeZones, zone); i >= 0 {
		m.activeZones = slices.Delete(m.activeZones, i, i+1)
	} else {
		m.activeZones = append(m.activeZones, zone)
	}
	m.clampCursor()
}

func (m *bookingModal) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

func zoneKey(key string) int {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0
	}
	return int(key[0] - '0')
}

func (m *bookingModal) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Book a Sunbed"))
	b.WriteString("\n")
	if m.multiSelect() {
		b.WriteString(hint(fmt.Sprintf("Select up to %d sunbeds from %d available options.", m.remainingQuota, len(m.available))))
	} else {
		b.WriteString(hint(fmt.Sprintf("Select a sunbed from %d available options.", len(m.available))))
	}
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")

	zoneChips := make([]string, 0, len(m.zones))
	for i, zone := range m.zones {
		label := fmt.Sprintf("%d %s", i+1, zone)
		if slices.Contains(m.activeZones, zone) {
			zoneChips = append(zoneChips, chip(label, accentColor))
		} else {
			zoneChips = append(zoneChips, hint("["+label+"]"))
		}
	}
	b.WriteString(strings.Join(zoneChips, " "))
	b.WriteString("\n\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(hint("No sunbeds match your search."))
		b.WriteString("\n")
	}
	i := 0
	full := m.multiSelect() && len(m.selected) >= m.remainingQuota
	for _, group := range service.GroupByZone(rows) {
		b.WriteString(titleStyle.Render(group.Zone))
		b.WriteString("\n")
		for _, sunbed := range group.Sunbeds {
			picked := slices.Contains(m.selected, sunbed.ID)
			line := checkbox(picked) + " " + sunbed.ID
			if !m.multiSelect() {
				line = radio(picked) + " " + sunbed.ID
			}
			if full && !picked {
				line = disabledStyle.Render(line)
			}
			b.WriteString(cursorPrefix(i == m.cursor) + line + "\n")
			i++
		}
	}

	b.WriteString("\n")
	if len(m.selected) > 0 {
		b.WriteString(fmt.Sprintf("Selected: %s", strings.Join(m.selected, ", ")))
	} else {
		b.WriteString(hint("Nothing selected"))
	}
	b.WriteString("\n")
	confirm := "enter confirm"
	if len(m.selected) == 0 {
		confirm = disabledStyle.Render("enter confirm")
	}
	b.WriteString(hint("↑/↓ move • space select • / search • 1-9 zones • c clear • ") + confirm + hint(" • esc cancel"))
	return panel(width, b.String())
}

func (m *bookingModal) close() {
	m.search.Blur()
}
