package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"resort-concierge/model"
	"resort-concierge/store"
)

type testItem struct {
	value string
}

func (t testItem) Title() string       { return t.value }
func (t testItem) Description() string { return "" }
func (t testItem) FilterValue() string { return strings.ToLower(t.value) }

func newFilterList(items []list.Item) *list.Model {
	l := newList("Room Services", items)
	return &l
}

func TestHandleFilterInput_AppendsRunes(t *testing.T) {
	l := newFilterList([]list.Item{
		testItem{value: "Housekeeping"},
		testItem{value: "Room Service"},
	})

	if !handleFilterInput(l, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := l.FilterValue(); got != "h" {
		t.Fatalf("expected filter value to be %q, got %q", "h", got)
	}

	if !handleFilterInput(l, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := l.FilterValue(); got != "ho" {
		t.Fatalf("expected filter value to be %q, got %q", "ho", got)
	}
}

func TestHandleFilterInput_Backspace(t *testing.T) {
	l := newFilterList([]list.Item{
		testItem{value: "Housekeeping"},
		testItem{value: "Room Service"},
	})

	_ = handleFilterInput(l, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	_ = handleFilterInput(l, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})

	if !handleFilterInput(l, tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatal("expected backspace to be handled")
	}
	if got := l.FilterValue(); got != "h" {
		t.Fatalf("expected filter value to be %q, got %q", "h", got)
	}

	_ = handleFilterInput(l, tea.KeyMsg{Type: tea.KeyBackspace})
	if handleFilterInput(l, tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatal("expected backspace on an empty filter to fall through")
	}
}

func TestHandleFilterInput_Space(t *testing.T) {
	l := newFilterList([]list.Item{
		testItem{value: "Do Not Disturb"},
	})

	_ = handleFilterInput(l, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("do")})

	if !handleFilterInput(l, tea.KeyMsg{Type: tea.KeySpace}) {
		t.Fatal("expected space to be handled")
	}
	if got := l.FilterValue(); got != "do " {
		t.Fatalf("expected filter value to be %q, got %q", "do ", got)
	}
}

func newTestApp(t *testing.T) (appModel, *testClock) {
	t.Helper()
	catalog, err := store.DefaultCatalog()
	if err != nil {
		t.Fatalf("expected built-in catalog, got %v", err)
	}
	clock := &testClock{now: noon}
	m := New(Options{
		Guest: model.GuestInfo{
			UserName:    "John Smith",
			HotelName:   "Grand Paradise Resort",
			RoomNumber:  "305",
			SunbedQuota: 2,
		},
		Catalog: catalog,
		Now:     clock.Now,
	}).(appModel)
	return m, clock
}

func send(m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(appModel), cmd
}

func TestApp_HomeNavigatesToSunbeds(t *testing.T) {
	m, _ := newTestApp(t)

	m, cmd := send(m, special(tea.KeyEnter))
	msg, ok := runCmd(t, cmd).(navigateMsg)
	if !ok || msg.to != pageSunbeds {
		t.Fatalf("expected navigation to sunbeds, got %+v", msg)
	}
	m, _ = send(m, msg)
	if _, ok := m.page.(*sunbedsPage); !ok {
		t.Fatalf("expected sunbeds page, got %T", m.page)
	}
	if !strings.Contains(m.View(), "Pool & Beach") {
		t.Fatal("expected header to name the pool area")
	}
}

func TestApp_NavigatingAwayStopsPageTickers(t *testing.T) {
	m, _ := newTestApp(t)
	m, _ = send(m, navigateMsg{to: pageSunbeds})
	sunbeds := m.page.(*sunbedsPage)
	stale := tickFor(sunbeds.timers[autoResolveTicker], noon)

	m, _ = send(m, navigateMsg{to: pageHome})
	if len(sunbeds.timers) != 0 {
		t.Fatalf("expected sunbeds tickers stopped, got %d", len(sunbeds.timers))
	}
	if _, cmd := send(m, stale); cmd != nil {
		t.Fatal("expected stale tick to be dropped")
	}
}

func TestApp_ProfileUpdatesGuest(t *testing.T) {
	m, _ := newTestApp(t)

	m, _ = send(m, special(tea.KeyCtrlP))
	if m.profile == nil {
		t.Fatal("expected profile to open")
	}
	m.profile.fields[fieldUsername].SetValue("Jane Doe")
	m, _ = send(m, special(tea.KeyEnter))
	if !m.profile.saving {
		t.Fatal("expected username save to be pending")
	}

	m, cmd := send(m, tickFor(m.profile.delay, noon))
	result, ok := runCmd(t, cmd).(profileResult)
	if !ok {
		t.Fatalf("expected profileResult, got %T", result)
	}
	m, cmd = send(m, result)
	if m.profile != nil {
		t.Fatal("expected profile to close after saving")
	}
	if got := m.deps.guest.UserName; got != "Jane Doe" {
		t.Fatalf("expected username %q, got %q", "Jane Doe", got)
	}
	if text := toastText(t, cmd); text != "Username updated successfully" {
		t.Fatalf("unexpected toast %q", text)
	}
}

func TestApp_ProfileShortcutIgnoredWhileModalOpen(t *testing.T) {
	m, _ := newTestApp(t)
	m, _ = send(m, navigateMsg{to: pageSunbeds})
	m, _ = send(m, key("f"))

	m, _ = send(m, special(tea.KeyCtrlP))
	if m.profile != nil {
		t.Fatal("expected ctrl+p to be ignored while the FAQ is open")
	}
}

func TestApp_ToastExpires(t *testing.T) {
	m, _ := newTestApp(t)

	m, _ = send(m, toastMsg{text: "Request sent", kind: toastSuccess})
	if !strings.Contains(m.View(), "Request sent") {
		t.Fatal("expected toast in view")
	}
	first := tickFor(m.toast.timer, noon)

	m, _ = send(m, toastMsg{text: "Request cancelled", kind: toastSuccess})
	m, _ = send(m, first)
	if !strings.Contains(m.View(), "Request cancelled") {
		t.Fatal("expected newer toast to survive the previous expiry")
	}

	m, _ = send(m, tickFor(m.toast.timer, noon))
	if strings.Contains(m.View(), "Request cancelled") {
		t.Fatal("expected toast to expire")
	}
}
