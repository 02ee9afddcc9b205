package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"resort-concierge/model"
	"resort-concierge/service"
)

const roomReservedRows = 8

var roomServiceItems = []list.Item{
	menuItem[roomService]{key: roomHousekeeping, title: "Housekeeping", desc: "Request cleaning service for your room"},
	menuItem[roomService]{key: roomFood, title: "Room Service", desc: "Order food and beverages to your room"},
	menuItem[roomService]{key: roomDoNotDisturb, title: "Do Not Disturb", desc: "Set up quiet hours for your room"},
	menuItem[roomService]{key: roomQuestions, title: "Ask Questions", desc: "Get assistance from our concierge"},
	menuItem[roomService]{key: roomProblem, title: "Report a Problem", desc: "Signal maintenance or other issues"},
	menuItem[roomService]{key: roomOther, title: "Other Services", desc: "Request any other room service"},
	menuItem[roomService]{key: roomLateCheckout, title: "Late Checkout", desc: "Stay in your room a little longer"},
	menuItem[roomService]{key: roomCharges, title: "Room Charges", desc: "Orders charged to your room"},
}

// roomPage lists the in-room services and tracks the requests filed from it.
type roomPage struct {
	deps     pageDeps
	requests *service.RequestQueue
	timers   tickers
	services list.Model
	dnd      service.DoNotDisturb
	modal    modal
	panel    *notificationsPanel
	log      *slog.Logger
}

func newRoomPage(deps pageDeps) *roomPage {
	log := deps.log.With(slog.String("component", "room"))
	services := newList("Room Services", roomServiceItems)
	resizeList(&services, defaultWidth, defaultHeight, roomReservedRows)
	return &roomPage{
		deps:     deps,
		requests: service.NewRequestQueue(service.WithClock(deps.now), service.WithLogger(log)),
		timers:   tickers{},
		services: services,
		dnd:      service.DefaultDoNotDisturb(),
		log:      log,
	}
}

func (p *roomPage) Init() tea.Cmd {
	return p.timers.start(autoResolveTicker, autoResolveInterval)
}

func (p *roomPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		resizeList(&p.services, msg.Width, msg.Height, roomReservedRows)
		return nil
	case tickMsg:
		if t := p.timers.match(msg); t != nil {
			cmds := []tea.Cmd{t.next()}
			for _, request := range p.requests.AutoResolve(p.deps.roomAutoResolve) {
				cmds = append(cmds, notify(service.RequestLabel(request)+" completed by staff"))
			}
			return tea.Batch(cmds...)
		}
		if p.modal != nil {
			return p.modal.Update(msg)
		}
		return nil
	case closeModalMsg:
		p.dismiss()
		return nil
	case roomFormResult:
		p.dismiss()
		return p.submit(msg)
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil
}

func (p *roomPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.modal != nil {
		return p.modal.Update(msg)
	}
	if p.panel != nil {
		cmd, closed := p.panel.update(msg)
		if closed {
			p.panel = nil
		}
		return cmd
	}
	if handleFilterInput(&p.services, msg) {
		return nil
	}

	switch msg.String() {
	case "esc":
		if p.services.IsFiltered() || p.services.FilterValue() != "" {
			p.services.ResetFilter()
			return nil
		}
		return navigate(pageHome)
	case "ctrl+n":
		p.panel = newNotificationsPanel(p.requests, p.deps.now)
		return nil
	case "enter":
		svc, ok := selectedKey[roomService](p.services)
		if !ok {
			return nil
		}
		return p.open(svc)
	}
	var cmd tea.Cmd
	p.services, cmd = p.services.Update(msg)
	return cmd
}

func (p *roomPage) open(svc roomService) tea.Cmd {
	if svc == roomCharges {
		p.modal = newChargesModal(p.deps.ledger, p.deps.guest.RoomNumber)
		return nil
	}
	form, cmd := newRoomForm(svc, p.dnd)
	p.modal = form
	return cmd
}

func (p *roomPage) dismiss() {
	if p.modal != nil {
		p.modal.close()
		p.modal = nil
	}
}

func (p *roomPage) file(requestType model.RequestType, details string) model.ServiceRequest {
	return p.requests.Submit(service.SubmitInput{
		Type:    requestType,
		Details: details,
		Status:  model.StatusPending,
	})
}

func (p *roomPage) submit(result roomFormResult) tea.Cmd {
	switch result.Service {
	case roomHousekeeping:
		details := result.Choice.label
		if result.Text != "" {
			details += ": " + result.Text
		}
		request := p.file(model.RequestCleaning, details)
		return notify("Housekeeping request submitted", withETA(fmt.Sprintf("Your %s cleaning request has been sent.", result.Choice.value), request))

	case roomFood:
		request := p.file(model.RequestFood, result.Text)
		return notify("Room service order submitted", withETA("Your food order request has been sent to the kitchen.", request))

	case roomDoNotDisturb:
		p.dnd = result.DND
		if !p.dnd.Enabled {
			for _, request := range p.requests.Requests() {
				if request.Type == model.RequestDoNotDisturb && request.Status.Open() {
					p.requests.Cancel(request.ID)
				}
			}
			return notify("Do Not Disturb deactivated")
		}
		p.file(model.RequestDoNotDisturb, p.dnd.Summary())
		return notify("Do Not Disturb activated", fmt.Sprintf("Active from %s to %s", p.dnd.From, p.dnd.Until))

	case roomQuestions:
		request := p.file(model.RequestQuestions, result.Text)
		return notify("Question sent to concierge", withETA("We'll respond to your question shortly.", request))

	case roomProblem:
		request := p.file(model.RequestProblem, fmt.Sprintf("%s: %s", result.Choice.label, result.Text))
		return notify("Problem report submitted", withETA("Our maintenance team will address this shortly.", request))

	case roomOther:
		request := p.file(model.RequestOther, result.Text)
		return notify("Service request submitted", withETA("We'll process your request shortly.", request))

	case roomLateCheckout:
		p.file(model.RequestOther, "Late checkout until "+result.Choice.value)
		return notify("Late checkout requested", "Check out by "+result.Choice.value)
	}
	return nil
}

func withETA(text string, request model.ServiceRequest) string {
	return fmt.Sprintf("%s Estimated wait %s.", text, request.EstimatedTime)
}

func (p *roomPage) View(width, height int) string {
	if p.modal != nil {
		return p.modal.View(width)
	}
	if p.panel != nil {
		return p.panel.View(width)
	}
	status := hint("Do Not Disturb: " + p.dnd.Summary())
	if p.dnd.Enabled {
		status = warnText("Do Not Disturb: " + p.dnd.Summary())
	}
	body := p.services.View() + "\n\n" + status
	if charges := p.deps.ledger.Total(); charges > 0 {
		body += "\n" + hint("Charged to room: "+service.FormatPrice(charges))
	}
	if open := p.requests.OpenCount(); open > 0 {
		body += "\n" + hint(fmt.Sprintf("%d request(s) in the queue • ctrl+n to follow them", open))
	}
	return body
}

func (p *roomPage) hints() string {
	switch {
	case p.modal != nil:
		return ""
	case p.panel != nil:
		return "esc close notifications"
	}
	return "esc home • type to filter • enter open • ctrl+n notifications"
}

func (p *roomPage) notificationCount() int {
	return p.requests.OpenCount()
}

func (p *roomPage) capturing() bool {
	return p.modal != nil || p.panel != nil
}

func (p *roomPage) teardown() {
	p.dismiss()
	p.panel = nil
	p.timers.stopAll()
}
