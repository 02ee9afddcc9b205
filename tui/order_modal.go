package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"resort-concierge/model"
	"resort-concierge/service"
)

const menuClockInterval = time.Minute

type orderResult struct {
	Summary  model.OrderSummary
	SunbedID string
}

type orderStep int

const (
	stepMenu orderStep = iota
	stepPayment
)

var paymentMethods = []model.PaymentMethod{model.PaymentCard, model.PaymentCash, model.PaymentRoom}

var paymentDescriptions = map[model.PaymentMethod]string{
	model.PaymentCard: "Credit/Debit Card",
	model.PaymentCash: "Cash (pay on delivery)",
	model.PaymentRoom: "Charge to Room (added to your hotel bill)",
}

// orderModal composes a food and drinks order. Availability windows are
// evaluated against a clock refreshed every minute while the modal is open.
type orderModal struct {
	drinks   []model.MenuItem
	food     []model.MenuItem
	tab      model.MenuKind
	cursor   int
	step     orderStep
	payment  int
	sunbedID string

	selection *service.OrderSelection
	now       time.Time
	clock     *ticker
	err       error
}

func newOrderModal(drinks, food []model.MenuItem, sunbedID string, now time.Time) (*orderModal, tea.Cmd) {
	m := &orderModal{
		drinks:    drinks,
		food:      food,
		tab:       model.MenuDrink,
		payment:   -1,
		sunbedID:  sunbedID,
		selection: service.NewOrderSelection(),
		now:       now,
		clock:     newTicker("order-clock", menuClockInterval),
	}
	return m, m.clock.start()
}

func (m *orderModal) items() []model.MenuItem {
	if m.tab == model.MenuFood {
		return m.food
	}
	return m.drinks
}

func (m *orderModal) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.clock.accept(msg) {
			return nil
		}
		m.now = msg.at
		return m.clock.next()
	case tea.KeyMsg:
		if m.step == stepPayment {
			return m.updatePayment(msg)
		}
		return m.updateMenu(msg)
	}
	return nil
}

func (m *orderModal) updateMenu(key tea.KeyMsg) tea.Cmd {
	items := m.items()
	switch key.String() {
	case "esc":
		return closeModal
	case "tab", "left", "right", "h", "l":
		if m.tab == model.MenuDrink {
			m.tab = model.MenuFood
		} else {
			m.tab = model.MenuDrink
		}
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case " ", "x":
		if len(items) == 0 {
			return nil
		}
		item := items[m.cursor]
		if _, picked := m.selection.Selected(item.ID); !picked && !service.IsAvailable(item, m.now) {
			return nil
		}
		m.selection.Toggle(item)
	case "+", "=":
		if len(items) > 0 {
			m.selection.SetQuantity(items[m.cursor].ID, 1)
		}
	case "-":
		if len(items) > 0 {
			m.selection.SetQuantity(items[m.cursor].ID, -1)
		}
	case "enter":
		if m.selection.Len() > 0 {
			m.step = stepPayment
		}
	}
	return nil
}

func (m *orderModal) updatePayment(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.step = stepMenu
		m.err = nil
	case "up", "k":
		if m.payment > 0 {
			m.payment--
		} else {
			m.payment = 0
		}
	case "down", "j":
		if m.payment < len(paymentMethods)-1 {
			m.payment++
		}
	case "1", "2", "3":
		m.payment = int(key.String()[0] - '1')
	case "enter":
		method := model.PaymentMethod("")
		if m.payment >= 0 {
			method = paymentMethods[m.payment]
		}
		summary, err := m.selection.Checkout(method)
		if err != nil {
			m.err = err
			return nil
		}
		sunbedID := m.sunbedID
		return func() tea.Msg { return orderResult{Summary: summary, SunbedID: sunbedID} }
	}
	return nil
}

func (m *orderModal) View(width int) string {
	if m.step == stepPayment {
		return panel(width, m.paymentView())
	}
	return panel(width, m.menuView())
}

func (m *orderModal) menuView() string {
	var b strings.Builder
	title := "Place an Order"
	if m.sunbedID != "" {
		title += " • Sunbed " + m.sunbedID
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("  " + hint(m.now.Format("15:04")))
	b.WriteString("\n\n")

	drinksTab, foodTab := chip("Drinks", accentColor), hint("[Food]")
	if m.tab == model.MenuFood {
		drinksTab, foodTab = hint("[Drinks]"), chip("Food", accentColor)
	}
	b.WriteString(drinksTab + " " + foodTab + "\n\n")

	category := ""
	for i, item := range m.items() {
		if item.Category != "" && item.Category != category {
			category = item.Category
			b.WriteString(hint(category) + "\n")
		}
		b.WriteString(cursorPrefix(i == m.cursor) + m.itemLine(item) + "\n")
	}

	b.WriteString("\n")
	if m.selection.Len() > 0 {
		b.WriteString(fmt.Sprintf("%d item(s) • Total %s", m.selection.Len(), titleStyle.Render(service.FormatPrice(m.selection.Total()))))
	} else {
		b.WriteString(hint("Nothing selected"))
	}
	b.WriteString("\n")
	next := "enter checkout"
	if m.selection.Len() == 0 {
		next = disabledStyle.Render(next)
	}
	b.WriteString(hint("tab drinks/food • ↑/↓ move • space select • +/- quantity • ") + next + hint(" • esc cancel"))
	return b.String()
}

func (m *orderModal) itemLine(item model.MenuItem) string {
	picked, selected := m.selection.Selected(item.ID)
	available := service.IsAvailable(item, m.now)

	price := service.FormatPrice(item.Price)
	if item.Promotion != nil && item.Promotion.OriginalPrice > item.Price {
		price = strikeStyle.Render(service.FormatPrice(item.Promotion.OriginalPrice)) + " " + price
	}
	name := item.Name
	if item.Featured() {
		name = "★ " + name
	}
	line := fmt.Sprintf("%s %s  %s", checkbox(selected), name, price)
	if selected {
		line += fmt.Sprintf("  x%d", picked.Quantity)
	}
	if item.Promotion != nil {
		label := item.Promotion.Label
		if item.Promotion.DiscountPercentage > 0 {
			label = fmt.Sprintf("%s -%d%%", label, item.Promotion.DiscountPercentage)
		}
		line += " " + chip(label, warnColor)
	}
	if !available {
		return disabledStyle.Render(line) + " " + hint(service.AvailabilityText(item))
	}
	if text := service.AvailabilityText(item); text != "" {
		line += " " + hint(text)
	}
	return line
}

func (m *orderModal) paymentView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Review your order"))
	b.WriteString("\n\n")
	for _, item := range m.selection.Items() {
		b.WriteString(fmt.Sprintf("  %dx %s  %s\n", item.Quantity, item.Name, service.FormatPrice(item.Price*float64(item.Quantity))))
	}
	b.WriteString("\n" + titleStyle.Render("Total: "+service.FormatPrice(m.selection.Total())) + "\n\n")
	b.WriteString("Payment method\n")
	for i, method := range paymentMethods {
		b.WriteString(fmt.Sprintf("%s%s %d %s\n", cursorPrefix(i == m.payment), radio(i == m.payment), i+1, paymentDescriptions[method]))
	}
	if m.err != nil {
		b.WriteString("\n" + errText(capitalize(m.err.Error())) + "\n")
	}
	b.WriteString("\n")
	confirm := "enter confirm order"
	if m.payment < 0 {
		confirm = disabledStyle.Render(confirm)
	}
	b.WriteString(hint("↑/↓ or 1-3 choose payment • ") + confirm + hint(" • esc back to menu"))
	return b.String()
}

func (m *orderModal) close() {
	m.clock.stop()
}
