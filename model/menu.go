package model

type MenuKind string

const (
	MenuDrink MenuKind = "drink"
	MenuFood  MenuKind = "food"
)

type Promotion struct {
	OriginalPrice      float64 `json:"originalPrice"`
	DiscountPercentage int     `json:"discountPercentage"`
	Label              string  `json:"label"`
}

type MenuItem struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Price         float64    `json:"price"`
	Description   string     `json:"description"`
	Kind          MenuKind   `json:"kind"`
	AvailableFrom string     `json:"availableFrom,omitempty"`
	AvailableTo   string     `json:"availableTo,omitempty"`
	Category      string     `json:"category,omitempty"`
	Promotion     *Promotion `json:"promotion,omitempty"`
}

// Featured reports whether the item carries the house "Our Choice" promotion.
func (m MenuItem) Featured() bool {
	return m.Promotion != nil && m.Promotion.Label == "Our Choice"
}

type OrderItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
	PaymentRoom PaymentMethod = "room"
)

func (p PaymentMethod) Label() string {
	switch p {
	case PaymentCard:
		return "Card"
	case PaymentCash:
		return "Cash"
	case PaymentRoom:
		return "Room"
	default:
		return ""
	}
}

func (p PaymentMethod) Valid() bool {
	return p.Label() != ""
}

type OrderSummary struct {
	Reference string        `json:"reference"`
	Items     []OrderItem   `json:"items"`
	Total     float64       `json:"total"`
	Payment   PaymentMethod `json:"payment"`
}
