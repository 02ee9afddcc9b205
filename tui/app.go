package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"resort-concierge/model"
	"resort-concierge/service"
	"resort-concierge/store"
)

type pageID int

const (
	pageHome pageID = iota
	pageSunbeds
	pageRoom
)

func (p pageID) String() string {
	switch p {
	case pageSunbeds:
		return "sunbeds"
	case pageRoom:
		return "room"
	default:
		return "home"
	}
}

type navigateMsg struct {
	to pageID
}

func navigate(to pageID) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{to: to}
	}
}

// page is one screen of the concierge. A page owns its managers and its
// tickers; teardown stops every ticker it started.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	hints() string
	notificationCount() int
	// capturing reports whether a modal or panel is consuming keys.
	capturing() bool
	teardown()
}

// Options configures the concierge program.
type Options struct {
	Guest   model.GuestInfo
	Catalog store.Catalog

	WaiterAutoResolve time.Duration
	RoomAutoResolve   time.Duration

	Logger *slog.Logger
	// Now overrides the wall clock, for tests.
	Now func() time.Time
}

// pageDeps is what the shell hands to every page it creates.
type pageDeps struct {
	guest   *model.GuestInfo
	catalog store.Catalog
	ledger  *service.ChargeLedger
	now     func() time.Time
	log     *slog.Logger

	waiterAutoResolve time.Duration
	roomAutoResolve   time.Duration
}

type appModel struct {
	deps pageDeps

	current pageID
	page    page
	profile *profileModal
	toast   toast

	width  int
	height int
}

func New(opts Options) tea.Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.WaiterAutoResolve <= 0 {
		opts.WaiterAutoResolve = 30 * time.Second
	}
	if opts.RoomAutoResolve <= 0 {
		opts.RoomAutoResolve = 90 * time.Second
	}
	guest := opts.Guest
	m := appModel{
		deps: pageDeps{
			guest:             &guest,
			catalog:           opts.Catalog,
			ledger:            service.NewChargeLedger(),
			now:               opts.Now,
			log:               opts.Logger,
			waiterAutoResolve: opts.WaiterAutoResolve,
			roomAutoResolve:   opts.RoomAutoResolve,
		},
		toast: newToast(),
	}
	m.current = pageHome
	m.page = m.newPage(pageHome)
	return m
}

func (m appModel) newPage(id pageID) page {
	switch id {
	case pageSunbeds:
		return newSunbedsPage(m.deps)
	case pageRoom:
		return newRoomPage(m.deps)
	default:
		return newHomePage(m.deps)
	}
}

func (m appModel) Init() tea.Cmd {
	return m.page.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.page.Update(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.page.teardown()
			return m, tea.Quit
		}
		if m.profile != nil {
			return m, m.profile.Update(msg)
		}
		if msg.String() == "ctrl+p" && !m.page.capturing() {
			return m, m.openProfile()
		}
		return m, m.page.Update(msg)

	case toastMsg:
		if msg.kind == toastError {
			m.deps.log.Warn("error shown to guest", slog.String("message", msg.text))
		}
		return m, m.toast.show(msg)

	case tickMsg:
		if m.toast.expire(msg) {
			return m, nil
		}
		var cmds []tea.Cmd
		if m.profile != nil {
			cmds = append(cmds, m.profile.Update(msg))
		}
		cmds = append(cmds, m.page.Update(msg))
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if m.profile != nil {
			return m, m.profile.Update(msg)
		}
		return m, nil

	case navigateMsg:
		m.page.teardown()
		m.deps.log.Info("page opened", slog.String("from", m.current.String()), slog.String("to", msg.to.String()))
		m.current = msg.to
		m.page = m.newPage(msg.to)
		cmds := []tea.Cmd{m.page.Init()}
		if m.width > 0 {
			size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
			cmds = append(cmds, m.page.Update(size))
		}
		return m, tea.Batch(cmds...)

	case closeModalMsg:
		if m.profile != nil {
			m.closeProfile()
			return m, nil
		}
		return m, m.page.Update(msg)

	case profileResult:
		m.closeProfile()
		return m, m.applyProfile(msg)
	}
	return m, m.page.Update(msg)
}

func (m *appModel) openProfile() tea.Cmd {
	profile, cmd := newProfileModal(m.deps.guest.UserName)
	m.profile = profile
	return cmd
}

func (m *appModel) closeProfile() {
	if m.profile == nil {
		return
	}
	m.profile.close()
	m.profile = nil
}

// applyProfile is the only writer of the guest record.
func (m *appModel) applyProfile(result profileResult) tea.Cmd {
	if result.PasswordChanged {
		m.deps.log.Info("password change accepted")
		return notify("Password updated successfully")
	}
	m.deps.log.Info("username updated", slog.String("from", m.deps.guest.UserName), slog.String("to", result.Username))
	m.deps.guest.UserName = result.Username
	return notify("Username updated successfully")
}

func (m appModel) View() string {
	header := m.headerView()
	var body string
	if m.profile != nil {
		body = m.profile.View(m.width)
	} else {
		body = m.page.View(m.width, m.height)
	}
	footer := m.toast.View()
	if footer != "" {
		footer = "\n\n" + footer
	}
	return header + "\n\n" + body + footer
}

func (m appModel) headerView() string {
	guest := m.deps.guest
	title := titleStyle.Render(guest.HotelName)
	sub := []string{}
	if guest.UserName != "" {
		sub = append(sub, guest.UserName)
	}
	if guest.RoomNumber != "" {
		sub = append(sub, fmt.Sprintf("Room %s", guest.RoomNumber))
	}
	switch m.current {
	case pageSunbeds:
		sub = append(sub, "Pool & Beach")
	case pageRoom:
		sub = append(sub, "Room Services")
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}
	bell := ""
	if count := m.page.notificationCount(); count > 0 {
		bell = "  " + badgeStyle.Render(fmt.Sprintf("🔔 %d", count))
	}
	hints := "ctrl+c quit • ctrl+p profile"
	if extra := m.page.hints(); extra != "" {
		hints += " • " + extra
	}
	if m.profile != nil {
		hints = "ctrl+c quit • esc close profile"
	}
	return title + bell + meta + "\n" + hint(hints)
}
