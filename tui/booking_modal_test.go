package tui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"resort-concierge/model"
)

var testSunbeds = []model.Sunbed{
	{ID: "A1", Zone: "Pool Area", Status: model.SunbedAvailable},
	{ID: "A3", Zone: "Pool Area", Status: model.SunbedAvailable},
	{ID: "B1", Zone: "Beach Front", Status: model.SunbedAvailable},
	{ID: "C2", Zone: "Garden View", Status: model.SunbedAvailable},
}

func TestBookingModal_MultiSelectStopsAtQuota(t *testing.T) {
	m := newBookingModal(testSunbeds, 2)

	_ = m.Update(special(tea.KeySpace))
	_ = m.Update(special(tea.KeyDown))
	_ = m.Update(special(tea.KeySpace))
	_ = m.Update(special(tea.KeyDown))
	_ = m.Update(special(tea.KeySpace))

	if !reflect.DeepEqual(m.selected, []string{"A1", "A3"}) {
		t.Fatalf("expected selection capped at quota, got %v", m.selected)
	}

	msg, ok := runCmd(t, m.Update(special(tea.KeyEnter))).(bookingResult)
	if !ok {
		t.Fatal("expected bookingResult on confirm")
	}
	if !reflect.DeepEqual(msg.SunbedIDs, []string{"A1", "A3"}) {
		t.Fatalf("expected A1 and A3, got %v", msg.SunbedIDs)
	}
}

func TestBookingModal_SingleSelectReplaces(t *testing.T) {
	m := newBookingModal(testSunbeds, 1)

	_ = m.Update(special(tea.KeySpace))
	_ = m.Update(special(tea.KeyDown))
	_ = m.Update(special(tea.KeySpace))

	if !reflect.DeepEqual(m.selected, []string{"A3"}) {
		t.Fatalf("expected single selection to move to A3, got %v", m.selected)
	}
}

func TestBookingModal_ConfirmDisabledWithoutSelection(t *testing.T) {
	m := newBookingModal(testSunbeds, 2)

	if cmd := m.Update(special(tea.KeyEnter)); cmd != nil {
		t.Fatal("expected confirm to do nothing with an empty selection")
	}
	if msg := runCmd(t, m.Update(special(tea.KeyEsc))); msg != (closeModalMsg{}) {
		t.Fatalf("expected closeModalMsg, got %T", msg)
	}
}

func TestBookingModal_SearchAndZoneFilters(t *testing.T) {
	m := newBookingModal(testSunbeds, 2)

	_ = m.Update(key("/"))
	if !m.search.Focused() {
		t.Fatal("expected / to focus search")
	}
	typeText(m.Update, "b")
	_ = m.Update(special(tea.KeyEnter))
	if rows := m.rows(); len(rows) != 1 || rows[0].ID != "B1" {
		t.Fatalf("expected search to keep B1 only, got %v", rows)
	}

	_ = m.Update(key("c"))
	_ = m.Update(key("3"))
	if rows := m.rows(); len(rows) != 1 || rows[0].ID != "C2" {
		t.Fatalf("expected zone 3 to keep C2 only, got %v", rows)
	}
	_ = m.Update(key("1"))
	if rows := m.rows(); len(rows) != 3 {
		t.Fatalf("expected Pool Area and Garden View, got %v", rows)
	}
}

func TestBookingModal_ReopenStartsClean(t *testing.T) {
	p, _ := newTestSunbedsPage(t)

	_ = p.Update(key("b"))
	_ = p.Update(special(tea.KeySpace))
	if first, ok := p.modal.(*bookingModal); !ok || len(first.selected) != 1 {
		t.Fatal("expected a selection in the open booking form")
	}
	_ = p.Update(runCmd(t, p.Update(special(tea.KeyEsc))))
	if p.modal != nil {
		t.Fatal("expected esc to close the booking form")
	}

	_ = p.Update(key("b"))
	if again := p.modal.(*bookingModal); len(again.selected) != 0 || again.search.Value() != "" {
		t.Fatalf("expected a fresh form, got %v", again.selected)
	}
}
