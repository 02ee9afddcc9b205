package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"resort-concierge/model"
)

// ParseClock converts an "HH:MM" wall-clock string to minutes since midnight.
func ParseClock(value string) (int, error) {
	raw := strings.TrimSpace(value)
	hh, mm, ok := strings.Cut(raw, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid clock %q: want HH:MM", value)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid clock %q: hour out of range", value)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid clock %q: minute out of range", value)
	}
	return hours*60 + minutes, nil
}

// IsAvailable reports whether item can be ordered at now. Items without a
// window are always available; windows are inclusive on both ends and do not
// wrap past midnight, so a window ending before it starts never matches.
func IsAvailable(item model.MenuItem, now time.Time) bool {
	if item.AvailableFrom == "" || item.AvailableTo == "" {
		return true
	}
	from, err := ParseClock(item.AvailableFrom)
	if err != nil {
		return false
	}
	to, err := ParseClock(item.AvailableTo)
	if err != nil {
		return false
	}
	current := now.Hour()*60 + now.Minute()
	return current >= from && current <= to
}

// AvailabilityText describes the serving window, or "" for all-day items.
func AvailabilityText(item model.MenuItem) string {
	if item.AvailableFrom == "" || item.AvailableTo == "" {
		return ""
	}
	return fmt.Sprintf("Available %s - %s", item.AvailableFrom, item.AvailableTo)
}
