package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"resort-concierge/model"
	"resort-concierge/service"
)

var statusFilters = []service.StatusFilter{
	service.FilterAll,
	service.FilterInProgress,
	service.FilterDone,
	service.FilterCancelled,
}

// notificationsPanel lists a page's requests. It holds only view state; the
// requests stay with the page's queue.
type notificationsPanel struct {
	queue   *service.RequestQueue
	filter  int
	cursor  int
	merging map[int]bool
	now     func() time.Time
}

func newNotificationsPanel(queue *service.RequestQueue, now func() time.Time) *notificationsPanel {
	return &notificationsPanel{queue: queue, merging: map[int]bool{}, now: now}
}

func (p *notificationsPanel) visible() []model.ServiceRequest {
	return service.FilterRequests(p.queue.Requests(), statusFilters[p.filter])
}

func (p *notificationsPanel) selected() (model.ServiceRequest, bool) {
	rows := p.visible()
	if len(rows) == 0 {
		return model.ServiceRequest{}, false
	}
	p.cursor = min(p.cursor, len(rows)-1)
	return rows[p.cursor], true
}

// update handles a key and reports whether the panel asked to close.
func (p *notificationsPanel) update(key tea.KeyMsg) (tea.Cmd, bool) {
	switch key.String() {
	case "esc", "ctrl+n":
		return nil, true
	case "tab", "right", "l":
		p.filter = (p.filter + 1) % len(statusFilters)
		p.cursor = 0
	case "shift+tab", "left", "h":
		p.filter = (p.filter + len(statusFilters) - 1) % len(statusFilters)
		p.cursor = 0
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.visible())-1 {
			p.cursor++
		}
	case "x":
		if request, ok := p.selected(); ok && p.queue.Cancel(request.ID) {
			delete(p.merging, request.ID)
			return notify("Request cancelled"), false
		}
	case "d":
		if request, ok := p.selected(); ok && p.queue.Resolve(request.ID) {
			delete(p.merging, request.ID)
			return notify("Request marked as done"), false
		}
	case " ":
		if request, ok := p.selected(); ok && mergeable(request) {
			if p.merging[request.ID] {
				delete(p.merging, request.ID)
			} else {
				p.merging[request.ID] = true
			}
		}
	case "m":
		return p.merge(), false
	case "backspace", "delete":
		if request, ok := p.selected(); ok && p.queue.Remove(request.ID) {
			p.clampCursor()
		}
	case "C":
		if removed := p.queue.ClearHistory(); removed > 0 {
			p.clampCursor()
			return notify(fmt.Sprintf("Cleared %d finished request(s)", removed)), false
		}
	}
	return nil, false
}

func (p *notificationsPanel) merge() tea.Cmd {
	ids := p.mergeSelection()
	merged, err := p.queue.Merge(ids)
	if err != nil {
		return notifyErr(err)
	}
	p.merging = map[int]bool{}
	p.clampCursor()
	return notify(fmt.Sprintf("%d questions merged", len(ids)), "Estimated wait "+merged.EstimatedTime)
}

// mergeSelection returns the marked ids that are still mergeable, in list order.
func (p *notificationsPanel) mergeSelection() []int {
	var ids []int
	for _, request := range p.queue.Requests() {
		if p.merging[request.ID] && mergeable(request) {
			ids = append(ids, request.ID)
		}
	}
	return ids
}

func (p *notificationsPanel) clampCursor() {
	n := len(p.visible())
	if p.cursor >= n {
		p.cursor = max(0, n-1)
	}
}

func mergeable(request model.ServiceRequest) bool {
	return request.Type == model.RequestQuestions && request.Status == model.StatusPending
}

func (p *notificationsPanel) View(width int) string {
	var b strings.Builder
	requests := p.queue.Requests()
	b.WriteString(titleStyle.Render("Notifications"))
	if open := p.queue.OpenCount(); open > 0 {
		b.WriteString("  " + badgeStyle.Render(fmt.Sprintf("%d open", open)))
	}
	b.WriteString("\n\n")

	tabs := make([]string, 0, len(statusFilters))
	for i, filter := range statusFilters {
		label := fmt.Sprintf("%s (%d)", filter.Label(), len(service.FilterRequests(requests, filter)))
		if i == p.filter {
			tabs = append(tabs, chip(label, accentColor))
		} else {
			tabs = append(tabs, hint("["+label+"]"))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	rows := p.visible()
	if len(rows) == 0 {
		b.WriteString(hint("No requests here yet."))
		b.WriteString("\n")
	}
	for i, request := range rows {
		b.WriteString(p.requestView(request, i == p.cursor))
	}

	b.WriteString("\n")
	if n := len(p.mergeSelection()); n > 0 {
		b.WriteString(fmt.Sprintf("%d question(s) marked for merge", n) + "\n")
	}
	b.WriteString(hint("tab filter • ↑/↓ move • x cancel • d done • space mark question • m merge • del remove • C clear history • esc close"))
	return panel(width, b.String())
}

func (p *notificationsPanel) requestView(request model.ServiceRequest, active bool) string {
	var b strings.Builder
	mark := ""
	if mergeable(request) {
		mark = checkbox(p.merging[request.ID]) + " "
	}
	b.WriteString(cursorPrefix(active) + mark + titleStyle.Render(service.RequestLabel(request)) + " " + statusChip(request.Status))
	if service.ShowQueueBadge(request) {
		b.WriteString(" " + hint(fmt.Sprintf("#%d in queue", request.QueuePosition)))
	}
	b.WriteString("\n")

	meta := []string{ago(p.now().Sub(request.Timestamp))}
	if request.SunbedID != "" {
		meta = append(meta, "Sunbed "+request.SunbedID)
	}
	if request.EstimatedTime != "" && request.Status.Open() {
		meta = append(meta, "ETA "+request.EstimatedTime)
	}
	b.WriteString("    " + hint(strings.Join(meta, " • ")) + "\n")

	if order, ok := service.OrderView(request); ok {
		b.WriteString("    " + order.Items + "\n")
		b.WriteString("    " + order.Total)
		if order.PaymentMethod != "" {
			b.WriteString(hint(" • Payment: " + order.PaymentMethod))
		}
		b.WriteString("\n")
	} else if request.Details != "" && request.Type != model.RequestOther {
		for _, line := range strings.Split(request.Details, "\n") {
			b.WriteString("    " + line + "\n")
		}
	}
	return b.String()
}

func statusChip(status model.RequestStatus) string {
	switch status {
	case model.StatusPending:
		return chip("Pending", warnColor)
	case model.StatusInProgress:
		return chip("In progress", accentColor)
	case model.StatusDone:
		return chip("Done", successColor)
	default:
		return chip("Cancelled", mutedColor)
	}
}

func ago(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}
