package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"resort-concierge/model"
)

var (
	ErrEmptyOrder    = errors.New("order has no items")
	ErrPaymentMethod = errors.New("choose card, cash or room payment")
)

const (
	orderTotalToken   = " | Total: €"
	orderPaymentToken = "Payment: "
)

// OrderSelection is the working basket of an order form.
type OrderSelection struct {
	order []string
	items map[string]model.OrderItem
}

func NewOrderSelection() *OrderSelection {
	return &OrderSelection{items: map[string]model.OrderItem{}}
}

// Toggle adds item with quantity one, or drops it when already selected.
func (s *OrderSelection) Toggle(item model.MenuItem) {
	if _, ok := s.items[item.ID]; ok {
		delete(s.items, item.ID)
		for i, id := range s.order {
			if id == item.ID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.items[item.ID] = model.OrderItem{MenuItem: item, Quantity: 1}
	s.order = append(s.order, item.ID)
}

// SetQuantity changes the quantity of a selected item by delta, never below one.
func (s *OrderSelection) SetQuantity(itemID string, delta int) {
	item, ok := s.items[itemID]
	if !ok {
		return
	}
	item.Quantity = max(1, item.Quantity+delta)
	s.items[itemID] = item
}

func (s *OrderSelection) Selected(itemID string) (model.OrderItem, bool) {
	item, ok := s.items[itemID]
	return item, ok
}

// Items returns the selection in the order items were picked.
func (s *OrderSelection) Items() []model.OrderItem {
	out := make([]model.OrderItem, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

func (s *OrderSelection) Len() int {
	return len(s.order)
}

// Total is the unrounded sum of price times quantity.
func (s *OrderSelection) Total() float64 {
	total := 0.0
	for _, id := range s.order {
		item := s.items[id]
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (s *OrderSelection) Reset() {
	s.order = nil
	s.items = map[string]model.OrderItem{}
}

// Checkout freezes the selection into an order summary.
func (s *OrderSelection) Checkout(method model.PaymentMethod) (model.OrderSummary, error) {
	if s.Len() == 0 {
		return model.OrderSummary{}, ErrEmptyOrder
	}
	if !method.Valid() {
		return model.OrderSummary{}, fmt.Errorf("%w: got %q", ErrPaymentMethod, method)
	}
	return model.OrderSummary{
		Reference: newOrderReference(),
		Items:     s.Items(),
		Total:     s.Total(),
		Payment:   method,
	}, nil
}

func newOrderReference() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// FormatPrice renders an amount in euros with two decimals.
func FormatPrice(value float64) string {
	return fmt.Sprintf("€%.2f", value)
}

// FormatOrderItems lists the items as "2x Lemonade (€2.50), 1x Water (€2.00)".
func FormatOrderItems(items []model.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%dx %s (%s)", item.Quantity, item.Name, FormatPrice(item.Price)))
	}
	return strings.Join(parts, ", ")
}

// FormatOrderDetails renders a summary as a single line for the request history.
func FormatOrderDetails(summary model.OrderSummary) string {
	return fmt.Sprintf("%s%s%.2f | %s%s", FormatOrderItems(summary.Items), orderTotalToken, summary.Total, orderPaymentToken, summary.Payment.Label())
}

// OrderDetailsView is an order line split back into its display parts.
type OrderDetailsView struct {
	Items         string
	Total         string
	PaymentMethod string
}

// ParseOrderDetails recognizes free-text details written in the
// FormatOrderDetails layout.
func ParseOrderDetails(details string) (OrderDetailsView, bool) {
	if !strings.Contains(details, orderTotalToken) {
		return OrderDetailsView{}, false
	}
	parts := strings.Split(details, " | ")
	view := OrderDetailsView{Items: parts[0]}
	for _, part := range parts[1:] {
		switch {
		case strings.HasPrefix(part, "Total: €"):
			view.Total = part
		case strings.HasPrefix(part, orderPaymentToken):
			view.PaymentMethod = strings.TrimPrefix(part, orderPaymentToken)
		}
	}
	return view, true
}

// OrderView returns the display parts of a request's order, preferring the
// structured summary over the details text.
func OrderView(request model.ServiceRequest) (OrderDetailsView, bool) {
	if request.Order != nil {
		return OrderDetailsView{
			Items:         FormatOrderItems(request.Order.Items),
			Total:         fmt.Sprintf("Total: %s", FormatPrice(request.Order.Total)),
			PaymentMethod: request.Order.Payment.Label(),
		}, true
	}
	if request.Type != model.RequestOrder {
		return OrderDetailsView{}, false
	}
	return ParseOrderDetails(request.Details)
}

// PaymentText is the phrase used in order confirmations.
func PaymentText(method model.PaymentMethod) string {
	switch method {
	case model.PaymentRoom:
		return "charged to room"
	case model.PaymentCard:
		return "paid by card"
	default:
		return "paid with cash"
	}
}

// OrderConfirmation is the toast text for a placed order.
func OrderConfirmation(summary model.OrderSummary, sunbedID string) string {
	names := make([]string, 0, len(summary.Items))
	for _, item := range summary.Items {
		names = append(names, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
	}
	text := fmt.Sprintf("Order placed: %s - %s %s", strings.Join(names, ", "), FormatPrice(summary.Total), PaymentText(summary.Payment))
	if sunbedID != "" {
		text += " for Sunbed " + sunbedID
	}
	if summary.Reference != "" {
		text += " (ref " + summary.Reference + ")"
	}
	return text
}
