package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const toastTTL = 4 * time.Second

type toastKind int

const (
	toastSuccess toastKind = iota
	toastInfo
	toastError
)

type toastMsg struct {
	text   string
	detail string
	kind   toastKind
}

// notify emits a transient footer message.
func notify(text string, detail ...string) tea.Cmd {
	return func() tea.Msg {
		msg := toastMsg{text: text, kind: toastSuccess}
		if len(detail) > 0 {
			msg.detail = detail[0]
		}
		return msg
	}
}

func notifyErr(err error) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{text: capitalize(err.Error()), kind: toastError}
	}
}

func notifyInfo(text string) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{text: text, kind: toastInfo}
	}
}

type toast struct {
	current *toastMsg
	timer   *ticker
}

func newToast() toast {
	return toast{timer: newTicker("toast", toastTTL)}
}

// show replaces the current toast and restarts its expiry.
func (t *toast) show(msg toastMsg) tea.Cmd {
	t.current = &msg
	return t.timer.start()
}

// expire clears the toast when msg is its live expiry tick.
func (t *toast) expire(msg tickMsg) bool {
	if !t.timer.accept(msg) {
		return false
	}
	t.timer.stop()
	t.current = nil
	return true
}

func (t toast) View() string {
	if t.current == nil {
		return ""
	}
	color := successColor
	switch t.current.kind {
	case toastInfo:
		color = accentColor
	case toastError:
		color = errorColor
	}
	line := lipgloss.NewStyle().Foreground(color).Bold(true).Render(t.current.text)
	if t.current.detail != "" {
		line += "  " + hint(t.current.detail)
	}
	return line
}

func capitalize(text string) string {
	if text == "" {
		return text
	}
	runes := []rune(text)
	if runes[0] >= 'a' && runes[0] <= 'z' {
		runes[0] -= 'a' - 'A'
	}
	return string(runes)
}
