package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Initial list size until the terminal reports its own.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// menuItem is a selectable row of the home and room service lists.
type menuItem[T any] struct {
	key   T
	title string
	desc  string
}

func (i menuItem[T]) Title() string       { return i.title }
func (i menuItem[T]) Description() string { return i.desc }
func (i menuItem[T]) FilterValue() string {
	return strings.ToLower(i.title + " " + i.desc)
}

func newList(title string, items []list.Item) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

// handleFilterInput types printable keys straight into the list filter.
func handleFilterInput(l *list.Model, msg tea.KeyMsg) bool {
	if !l.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		appendFilter(l, string(msg.Runes))
		return true
	case tea.KeySpace:
		appendFilter(l, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if l.FilterValue() == "" {
			return false
		}
		popFilter(l)
		return true
	default:
		return false
	}
}

func appendFilter(l *list.Model, value string) {
	if value == "" {
		return
	}
	l.SetFilterText(l.FilterValue() + value)
}

func popFilter(l *list.Model) {
	value := trimLastRune(l.FilterValue())
	if value == "" {
		l.ResetFilter()
		return
	}
	l.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

// selectedKey returns the key of the highlighted row.
func selectedKey[T any](l list.Model) (T, bool) {
	item, ok := l.SelectedItem().(menuItem[T])
	if !ok {
		var zero T
		return zero, false
	}
	return item.key, true
}

func resizeList(l *list.Model, width, height int, reserved int) {
	if width == 0 || height == 0 {
		return
	}
	h := height - reserved
	if h < 6 {
		h = 6
	}
	l.SetSize(width, h)
}
