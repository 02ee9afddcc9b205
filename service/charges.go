package service

import (
	"time"

	"resort-concierge/model"
)

// Charge is one line on the room bill.
type Charge struct {
	Reference   string
	Description string
	Amount      float64
	At          time.Time
}

// ChargeLedger accumulates orders billed to the room.
type ChargeLedger struct {
	charges []Charge
}

func NewChargeLedger() *ChargeLedger {
	return &ChargeLedger{}
}

// Record adds summary to the bill when it was charged to the room and
// reports whether it did.
func (l *ChargeLedger) Record(summary model.OrderSummary, at time.Time) bool {
	if summary.Payment != model.PaymentRoom || len(summary.Items) == 0 {
		return false
	}
	l.charges = append(l.charges, Charge{
		Reference:   summary.Reference,
		Description: FormatOrderItems(summary.Items),
		Amount:      summary.Total,
		At:          at,
	})
	return true
}

func (l *ChargeLedger) Charges() []Charge {
	return append([]Charge(nil), l.charges...)
}

func (l *ChargeLedger) Total() float64 {
	total := 0.0
	for _, charge := range l.charges {
		total += charge.Amount
	}
	return total
}
