package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// generations is shared by every ticker so a recreated page can never accept
// a tick scheduled by the instance it replaced.
var generations atomic.Uint64

type tickMsg struct {
	id  string
	gen uint64
	at  time.Time
}

// ticker is a cancellable periodic tea.Tick. Each start takes a fresh
// generation; ticks carrying any other generation are stale and dropped.
type ticker struct {
	id       string
	interval time.Duration
	gen      uint64
	running  bool
}

func newTicker(id string, interval time.Duration) *ticker {
	return &ticker{id: id, interval: interval}
}

func (t *ticker) start() tea.Cmd {
	t.gen = generations.Add(1)
	t.running = true
	return t.next()
}

// next schedules the following tick of the current generation.
func (t *ticker) next() tea.Cmd {
	if !t.running {
		return nil
	}
	id, gen := t.id, t.gen
	return tea.Tick(t.interval, func(at time.Time) tea.Msg {
		return tickMsg{id: id, gen: gen, at: at}
	})
}

func (t *ticker) stop() {
	t.running = false
	t.gen = generations.Add(1)
}

func (t *ticker) accept(msg tickMsg) bool {
	return t != nil && t.running && msg.id == t.id && msg.gen == t.gen
}

// tickers owns a set of keyed tickers with a common teardown.
type tickers map[string]*ticker

func (ts tickers) start(id string, interval time.Duration) tea.Cmd {
	if existing, ok := ts[id]; ok {
		existing.stop()
	}
	t := newTicker(id, interval)
	ts[id] = t
	return t.start()
}

func (ts tickers) stop(id string) {
	if t, ok := ts[id]; ok {
		t.stop()
		delete(ts, id)
	}
}

// match returns the ticker that owns msg, or nil for a stale or foreign tick.
func (ts tickers) match(msg tickMsg) *ticker {
	t, ok := ts[msg.id]
	if !ok || !t.accept(msg) {
		return nil
	}
	return t
}

func (ts tickers) stopAll() {
	for id := range ts {
		ts.stop(id)
	}
}
