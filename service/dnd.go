package service

import (
	"errors"
	"fmt"
)

var ErrQuietHours = errors.New("quiet hours must start before they end")

// DoNotDisturb is the room's quiet-hours setting.
type DoNotDisturb struct {
	Enabled bool
	From    string
	Until   string
}

func DefaultDoNotDisturb() DoNotDisturb {
	return DoNotDisturb{From: "14:00", Until: "16:00"}
}

// Validate checks both clocks and their order.
func (d DoNotDisturb) Validate() error {
	from, err := ParseClock(d.From)
	if err != nil {
		return err
	}
	until, err := ParseClock(d.Until)
	if err != nil {
		return err
	}
	if until <= from {
		return ErrQuietHours
	}
	return nil
}

func (d DoNotDisturb) Summary() string {
	if !d.Enabled {
		return "Currently inactive"
	}
	return fmt.Sprintf("Active from %s to %s", d.From, d.Until)
}
