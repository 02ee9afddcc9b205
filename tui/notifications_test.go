package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"resort-concierge/model"
	"resort-concierge/service"
)

func newTestPanel(t *testing.T) (*notificationsPanel, *service.RequestQueue) {
	t.Helper()
	clock := &testClock{now: noon}
	queue := service.NewRequestQueue(service.WithClock(clock.Now))
	return newNotificationsPanel(queue, clock.Now), queue
}

func TestNotificationsPanel_MergeNeedsTwoQuestions(t *testing.T) {
	p, queue := newTestPanel(t)
	queue.Submit(service.SubmitInput{Type: model.RequestQuestions, Details: "What time is breakfast?"})
	queue.Submit(service.SubmitInput{Type: model.RequestQuestions, Details: "Can I borrow an umbrella?"})

	_, _ = p.update(special(tea.KeySpace))
	cmd, _ := p.update(key("m"))
	msg, ok := runCmd(t, cmd).(toastMsg)
	if !ok || msg.kind != toastError || msg.text != "Select at least two questions to merge" {
		t.Fatalf("expected merge rejection toast, got %+v", msg)
	}
	if queue.Len() != 2 {
		t.Fatalf("expected list unchanged, got %d requests", queue.Len())
	}

	_, _ = p.update(special(tea.KeyDown))
	_, _ = p.update(special(tea.KeySpace))
	cmd, _ = p.update(key("m"))
	if text := toastText(t, cmd); text != "2 questions merged" {
		t.Fatalf("expected merge toast, got %q", text)
	}
	requests := queue.Requests()
	if len(requests) != 1 {
		t.Fatalf("expected one merged request, got %d", len(requests))
	}
	if !strings.Contains(requests[0].Details, "What time is breakfast?") || !strings.Contains(requests[0].Details, "Can I borrow an umbrella?") {
		t.Fatalf("expected both questions in merged details, got %q", requests[0].Details)
	}
	if len(p.mergeSelection()) != 0 {
		t.Fatal("expected merge marks to be cleared")
	}
}

func TestNotificationsPanel_OnlyPendingQuestionsCanBeMarked(t *testing.T) {
	p, queue := newTestPanel(t)
	queue.Submit(service.SubmitInput{Type: model.RequestTowel, Status: model.StatusInProgress})

	_, _ = p.update(special(tea.KeySpace))
	if len(p.merging) != 0 {
		t.Fatalf("expected towel request not to be markable, got %v", p.merging)
	}
}

func TestNotificationsPanel_CancelAndDone(t *testing.T) {
	p, queue := newTestPanel(t)
	towel := queue.Submit(service.SubmitInput{Type: model.RequestTowel, Status: model.StatusInProgress})
	food := queue.Submit(service.SubmitInput{Type: model.RequestFood, Details: "Club sandwich"})

	cmd, _ := p.update(key("d"))
	if text := toastText(t, cmd); text != "Request marked as done" {
		t.Fatalf("expected done toast, got %q", text)
	}
	if cmd, _ := p.update(key("x")); cmd != nil {
		t.Fatal("expected cancel on a done request to be a no-op")
	}
	if got, _ := queue.Get(towel.ID); got.Status != model.StatusDone {
		t.Fatalf("expected towel to stay done, got %s", got.Status)
	}

	_, _ = p.update(special(tea.KeyDown))
	cmd, _ = p.update(key("x"))
	if text := toastText(t, cmd); text != "Request cancelled" {
		t.Fatalf("expected cancel toast, got %q", text)
	}
	if got, _ := queue.Get(food.ID); got.Status != model.StatusCancelled {
		t.Fatalf("expected food cancelled, got %s", got.Status)
	}
}

func TestNotificationsPanel_FiltersAndClearHistory(t *testing.T) {
	p, queue := newTestPanel(t)
	open := queue.Submit(service.SubmitInput{Type: model.RequestCleaning})
	done := queue.Submit(service.SubmitInput{Type: model.RequestOther, Details: "Late checkout until 13:00"})
	queue.Resolve(done.ID)

	_, _ = p.update(special(tea.KeyTab))
	if rows := p.visible(); len(rows) != 1 || rows[0].ID != open.ID {
		t.Fatalf("expected in-progress filter to show the open request, got %v", rows)
	}
	_, _ = p.update(special(tea.KeyTab))
	if rows := p.visible(); len(rows) != 1 || rows[0].ID != done.ID {
		t.Fatalf("expected completed filter to show the done request, got %v", rows)
	}

	cmd, _ := p.update(key("C"))
	if text := toastText(t, cmd); text != "Cleared 1 finished request(s)" {
		t.Fatalf("unexpected toast %q", text)
	}
	if queue.Len() != 1 {
		t.Fatalf("expected open request to survive clear, got %d", queue.Len())
	}
	if _, closed := p.update(special(tea.KeyEsc)); !closed {
		t.Fatal("expected esc to close the panel")
	}
}

func TestNotificationsPanel_RendersOrderSummary(t *testing.T) {
	p, queue := newTestPanel(t)
	summary := model.OrderSummary{
		Items:   []model.OrderItem{{MenuItem: model.MenuItem{ID: "d7", Name: "Water", Price: 2}, Quantity: 1}},
		Total:   2,
		Payment: model.PaymentCash,
	}
	queue.Submit(service.SubmitInput{Type: model.RequestOrder, Details: service.FormatOrderDetails(summary), Order: &summary, SunbedID: "A1", Status: model.StatusInProgress})

	view := p.View(100)
	for _, want := range []string{"Food & Drinks Order", "1x Water (€2.00)", "Total: €2.00", "Payment: Cash", "Sunbed A1"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
}
