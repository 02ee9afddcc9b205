package tui

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"resort-concierge/model"
	"resort-concierge/service"
	"resort-concierge/store"
)

var noon = time.Date(2025, time.July, 14, 12, 0, 0, 0, time.Local)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestDeps(t *testing.T, clock *testClock) pageDeps {
	t.Helper()
	catalog, err := store.DefaultCatalog()
	if err != nil {
		t.Fatalf("expected built-in catalog, got %v", err)
	}
	guest := model.GuestInfo{
		UserName:    "John Smith",
		HotelName:   "Grand Paradise Resort",
		RoomNumber:  "305",
		SunbedQuota: 2,
	}
	return pageDeps{
		guest:             &guest,
		catalog:           catalog,
		ledger:            service.NewChargeLedger(),
		now:               clock.Now,
		log:               slog.New(slog.DiscardHandler),
		waiterAutoResolve: 30 * time.Second,
		roomAutoResolve:   90 * time.Second,
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func special(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeText(update func(tea.Msg) tea.Cmd, text string) {
	for _, r := range text {
		update(key(string(r)))
	}
}

// tickFor builds the next tick a live ticker would deliver.
func tickFor(t *ticker, at time.Time) tickMsg {
	return tickMsg{id: t.id, gen: t.gen, at: at}
}

// runCmd executes a command that is known not to sleep.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

func toastText(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	msg, ok := runCmd(t, cmd).(toastMsg)
	if !ok {
		t.Fatalf("expected toastMsg, got %T", msg)
	}
	return msg.text
}

func containsAll(s string, parts ...string) bool {
	for _, part := range parts {
		if !strings.Contains(s, part) {
			return false
		}
	}
	return true
}
