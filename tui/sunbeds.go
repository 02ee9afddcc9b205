package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"resort-concierge/model"
	"resort-concierge/service"
)

const (
	autoResolveInterval = 5 * time.Second
	countdownInterval   = time.Second

	autoResolveTicker = "auto-resolve"
	countdownPrefix   = "countdown:"
)

// sunbedsPage is the pool and beach screen: bookings with live countdowns,
// waiter calls and food and drinks orders.
type sunbedsPage struct {
	deps     pageDeps
	bookings *service.BookingManager
	requests *service.RequestQueue
	timers   tickers
	cursor   int
	modal    modal
	panel    *notificationsPanel
	log      *slog.Logger
}

func newSunbedsPage(deps pageDeps) *sunbedsPage {
	log := deps.log.With(slog.String("component", "sunbeds"))
	requests := service.NewRequestQueue(service.WithClock(deps.now), service.WithLogger(log))
	return &sunbedsPage{
		deps:     deps,
		bookings: service.NewBookingManager(deps.guest.SunbedQuota, log),
		requests: requests,
		timers:   tickers{},
		log:      log,
	}
}

func (p *sunbedsPage) Init() tea.Cmd {
	return p.timers.start(autoResolveTicker, autoResolveInterval)
}

func (p *sunbedsPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tickMsg:
		if t := p.timers.match(msg); t != nil {
			return p.onTick(t)
		}
		if p.modal != nil {
			return p.modal.Update(msg)
		}
		return nil
	case closeModalMsg:
		p.dismiss()
		return nil
	case bookingResult:
		p.dismiss()
		return p.book(msg.SunbedIDs)
	case quickBookResult:
		p.dismiss()
		return p.book([]string{msg.SunbedID})
	case waiterResult:
		p.dismiss()
		return p.callWaiter(msg)
	case orderResult:
		p.dismiss()
		return p.placeOrder(msg)
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil
}

func (p *sunbedsPage) onTick(t *ticker) tea.Cmd {
	if t.id == autoResolveTicker {
		cmds := []tea.Cmd{t.next()}
		for _, request := range p.requests.AutoResolve(p.deps.waiterAutoResolve) {
			cmds = append(cmds, notify(service.CompletionMessage(request)))
		}
		return tea.Batch(cmds...)
	}

	sunbedID := strings.TrimPrefix(t.id, countdownPrefix)
	remaining, ok := p.bookings.Tick(sunbedID)
	if !ok || remaining == 0 {
		// Expired bookings stay until the guest releases them.
		p.timers.stop(t.id)
		return nil
	}
	return t.next()
}

func (p *sunbedsPage) handleKey(msg tea.KeyMsg) tea.Cmd {
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

	switch msg.String() {
	case "q":
		p.teardown()
		return tea.Quit
	case "esc":
		return navigate(pageHome)
	case "ctrl+n":
		p.panel = newNotificationsPanel(p.requests, p.deps.now)
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < p.bookings.Count()-1 {
			p.cursor++
		}
	case "b":
		if p.bookings.RemainingQuota() == 0 {
			return notifyInfo(fmt.Sprintf("You have reached your limit of %d sunbeds", p.bookings.Quota()))
		}
		p.modal = newBookingModal(service.AvailableSunbeds(p.deps.catalog.Sunbeds, p.bookings), p.bookings.RemainingQuota())
	case "a":
		p.modal = newAvailableModal(service.AvailableSunbeds(p.deps.catalog.Sunbeds, p.bookings), p.bookings.RemainingQuota())
	case "c":
		p.modal = newComingSoonModal(service.ComingSoonSunbeds(p.deps.catalog.Sunbeds))
	case "f":
		p.modal = newFAQModal()
	case "o":
		return p.openOrder(p.defaultSunbed())
	case "w":
		modal, cmd := newWaiterModal(p.waiterSunbed())
		p.modal = modal
		return cmd
	case "r":
		return p.release()
	case "e":
		return p.extend()
	}
	return nil
}

func (p *sunbedsPage) dismiss() {
	if p.modal != nil {
		p.modal.close()
		p.modal = nil
	}
}

func (p *sunbedsPage) openOrder(sunbedID string) tea.Cmd {
	modal, cmd := newOrderModal(p.deps.catalog.Drinks(), p.deps.catalog.Food(), sunbedID, p.deps.now())
	p.modal = modal
	return cmd
}

func (p *sunbedsPage) selectedBooking() (model.Booking, bool) {
	bookings := p.bookings.Bookings()
	if len(bookings) == 0 {
		return model.Booking{}, false
	}
	p.cursor = min(p.cursor, len(bookings)-1)
	return bookings[p.cursor], true
}

// defaultSunbed is where requests go when the guest did not name a sunbed.
func (p *sunbedsPage) defaultSunbed() string {
	bookings := p.bookings.Bookings()
	if len(bookings) == 0 {
		return ""
	}
	return bookings[0].SunbedID
}

// waiterSunbed presets the waiter form: the only booking, or the highlighted
// one when the guest holds several.
func (p *sunbedsPage) waiterSunbed() string {
	if p.bookings.Count() > 1 {
		booking, _ := p.selectedBooking()
		return booking.SunbedID
	}
	return p.defaultSunbed()
}

func (p *sunbedsPage) book(ids []string) tea.Cmd {
	created, err := p.bookings.Book(ids, service.DefaultBookingMinutes)
	if err != nil {
		return notifyErr(err)
	}
	cmds := make([]tea.Cmd, 0, len(created)+1)
	for _, booking := range created {
		cmds = append(cmds, p.timers.start(countdownPrefix+booking.SunbedID, countdownInterval))
	}
	text := fmt.Sprintf("Sunbed %s booked successfully", ids[0])
	if len(ids) > 1 {
		text = fmt.Sprintf("%d sunbeds booked successfully", len(ids))
	}
	cmds = append(cmds, notify(text, "Duration: "+service.FormatDuration(service.DefaultBookingMinutes)))
	return tea.Batch(cmds...)
}

func (p *sunbedsPage) release() tea.Cmd {
	booking, ok := p.selectedBooking()
	if !ok || !p.bookings.Release(booking.SunbedID) {
		return nil
	}
	p.timers.stop(countdownPrefix + booking.SunbedID)
	if p.cursor > 0 && p.cursor >= p.bookings.Count() {
		p.cursor--
	}
	return notify(fmt.Sprintf("Sunbed %s released", booking.SunbedID))
}

func (p *sunbedsPage) extend() tea.Cmd {
	booking, ok := p.selectedBooking()
	if !ok {
		return nil
	}
	if !p.bookings.CanExtend(booking.SunbedID) {
		return notifyInfo("Bookings can be extended in their last 5 minutes")
	}
	p.bookings.Extend(booking.SunbedID, service.DefaultExtendSeconds)
	cmds := []tea.Cmd{notify(fmt.Sprintf("Booking extended by 30 minutes for sunbed %s", booking.SunbedID))}
	key := countdownPrefix + booking.SunbedID
	if _, running := p.timers[key]; !running {
		cmds = append(cmds, p.timers.start(key, countdownInterval))
	}
	return tea.Batch(cmds...)
}

func (p *sunbedsPage) callWaiter(result waiterResult) tea.Cmd {
	if result.Option == model.RequestOrder {
		return p.openOrder(result.SunbedID)
	}
	sunbedID := result.SunbedID
	if sunbedID == "" {
		sunbedID = p.defaultSunbed()
	}
	p.requests.Submit(service.SubmitInput{
		Type:     result.Option,
		Details:  result.Details,
		SunbedID: sunbedID,
		Status:   model.StatusInProgress,
	})
	if result.Option == model.RequestOther && result.Details != "" {
		return notify("Request sent: " + result.Details)
	}
	return notify("Request sent")
}

func (p *sunbedsPage) placeOrder(result orderResult) tea.Cmd {
	sunbedID := result.SunbedID
	if sunbedID == "" {
		sunbedID = p.defaultSunbed()
	}
	summary := result.Summary
	request := p.requests.Submit(service.SubmitInput{
		Type:     model.RequestOrder,
		Details:  service.FormatOrderDetails(summary),
		SunbedID: sunbedID,
		Order:    &summary,
		Status:   model.StatusInProgress,
	})
	if p.deps.ledger.Record(summary, request.Timestamp) {
		p.log.Info("order charged to room", slog.String("reference", summary.Reference), slog.Float64("amount", summary.Total))
	}
	return notify(service.OrderConfirmation(summary, sunbedID))
}

func (p *sunbedsPage) View(width, height int) string {
	if p.modal != nil {
		return p.modal.View(width)
	}
	if p.panel != nil {
		return p.panel.View(width)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sunbed Status"))
	b.WriteString("\n")
	b.WriteString(p.kpiView())
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Your Bookings (%d/%d)", p.bookings.Count(), p.bookings.Quota())))
	b.WriteString("\n")

	bookings := p.bookings.Bookings()
	if len(bookings) == 0 {
		b.WriteString(hint("No active bookings. Press b to book a sunbed."))
		b.WriteString("\n")
	}
	for i, booking := range bookings {
		b.WriteString(cursorPrefix(i == p.cursor) + p.bookingLine(booking) + "\n")
	}
	if open := p.requests.OpenCount(); open > 0 {
		b.WriteString("\n" + hint(fmt.Sprintf("%d request(s) on the way • ctrl+n to follow them", open)))
	}
	return b.String()
}

func (p *sunbedsPage) kpiView() string {
	available := len(service.AvailableSunbeds(p.deps.catalog.Sunbeds, p.bookings))
	occupied := len(service.OccupiedSunbeds(p.deps.catalog.Sunbeds, p.bookings))
	comingSoon := len(service.ComingSoonSunbeds(p.deps.catalog.Sunbeds))
	cards := []string{
		kpiStyle.BorderForeground(successColor).Render(fmt.Sprintf("Available\n%d\n%s", available, hint("a to list"))),
		kpiStyle.BorderForeground(errorColor).Render(fmt.Sprintf("Occupied\n%d\n%s", occupied, hint("in use"))),
		kpiStyle.BorderForeground(warnColor).Render(fmt.Sprintf("Coming Soon\n%d\n%s", comingSoon, hint("c for details"))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (p *sunbedsPage) bookingLine(booking model.Booking) string {
	zone := ""
	for _, sunbed := range p.deps.catalog.Sunbeds {
		if sunbed.ID == booking.SunbedID {
			zone = sunbed.Zone
			break
		}
	}
	line := fmt.Sprintf("Sunbed %s", booking.SunbedID)
	if zone != "" {
		line += hint(" • " + zone)
	}
	remaining := service.FormatRemaining(booking.DurationSeconds)
	switch {
	case booking.DurationSeconds == 0:
		line += "  " + errText("Time is up") + hint(" • r release")
	case p.bookings.CanExtend(booking.SunbedID):
		line += "  " + warnText(remaining) + " " + chip("e extend +30m", warnColor)
	default:
		line += "  " + remaining
	}
	return line
}

func (p *sunbedsPage) hints() string {
	switch {
	case p.modal != nil:
		return ""
	case p.panel != nil:
		return "esc close notifications"
	}
	return "esc home • q quit • b book • a available • c coming soon • o order • w waiter • ↑/↓ booking • r release • e extend • f faq • ctrl+n notifications"
}

func (p *sunbedsPage) notificationCount() int {
	return p.requests.OpenCount()
}

func (p *sunbedsPage) capturing() bool {
	return p.modal != nil || p.panel != nil
}

func (p *sunbedsPage) teardown() {
	p.dismiss()
	p.panel = nil
	p.timers.stopAll()
}
