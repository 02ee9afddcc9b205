package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type homeChoice int

const (
	homeSunbeds homeChoice = iota
	homeRoom
	homeActivities
	homeHelp
)

const homeReservedRows = 10

type homePage struct {
	deps  pageDeps
	menu  list.Model
	modal modal
}

func newHomePage(deps pageDeps) *homePage {
	items := []list.Item{
		menuItem[homeChoice]{key: homeSunbeds, title: "Sunbeds", desc: "Pool & Beach: book sunbeds, order drinks & food"},
		menuItem[homeChoice]{key: homeRoom, title: "Room", desc: "Accommodation: room service, housekeeping & more"},
		menuItem[homeChoice]{key: homeActivities, title: "Hotel Activities", desc: "Coming soon: excursions, spa, sports & kids club"},
		menuItem[homeChoice]{key: homeHelp, title: "Help & FAQ", desc: "How booking, ordering and waiter calls work"},
	}
	menu := newList("What would you like to manage?", items)
	resizeList(&menu, defaultWidth, defaultHeight, homeReservedRows)
	return &homePage{deps: deps, menu: menu}
}

func (p *homePage) Init() tea.Cmd {
	return nil
}

func (p *homePage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		resizeList(&p.menu, msg.Width, msg.Height, homeReservedRows)
		return nil
	case closeModalMsg:
		if p.modal != nil {
			p.modal.close()
			p.modal = nil
		}
		return nil
	case tea.KeyMsg:
		if p.modal != nil {
			return p.modal.Update(msg)
		}
		return p.handleKey(msg)
	}
	if p.modal != nil {
		return p.modal.Update(msg)
	}
	return nil
}

func (p *homePage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if handleFilterInput(&p.menu, msg) {
		return nil
	}
	switch msg.String() {
	case "esc":
		if p.menu.IsFiltered() || p.menu.FilterValue() != "" {
			p.menu.ResetFilter()
		}
		return nil
	case "enter":
		choice, ok := selectedKey[homeChoice](p.menu)
		if !ok {
			return nil
		}
		switch choice {
		case homeSunbeds:
			return navigate(pageSunbeds)
		case homeRoom:
			return navigate(pageRoom)
		case homeActivities:
			p.modal = newActivitiesModal()
		case homeHelp:
			p.modal = newFAQModal()
		}
		return nil
	}
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return cmd
}

func (p *homePage) View(width, height int) string {
	if p.modal != nil {
		return p.modal.View(width)
	}
	welcome := titleStyle.Render(fmt.Sprintf("Welcome to %s, %s", p.deps.guest.HotelName, p.deps.guest.UserName))
	footer := hint("Need help? Contact reception at extension 0 or visit our front desk")
	return welcome + "\n\n" + p.menu.View() + "\n\n" + footer
}

func (p *homePage) hints() string {
	if p.modal != nil {
		return "esc close"
	}
	return "type to filter • enter select"
}

func (p *homePage) notificationCount() int {
	return 0
}

func (p *homePage) capturing() bool {
	return p.modal != nil
}

func (p *homePage) teardown() {
	if p.modal != nil {
		p.modal.close()
		p.modal = nil
	}
}
