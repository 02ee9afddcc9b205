package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"resort-concierge/model"
)

const (
	DefaultBookingMinutes = 120
	DefaultExtendSeconds  = 1800
	// ExtendWindowSeconds is how close to expiry a booking must be before the
	// guest is offered an extension.
	ExtendWindowSeconds = 300
)

var (
	ErrNoSunbeds     = errors.New("no sunbeds selected")
	ErrQuotaExceeded = errors.New("sunbed quota exceeded")
	ErrAlreadyBooked = errors.New("sunbed already booked")
	ErrInvalidSunbed = errors.New("sunbed id is required")
)

var discardLogger = slog.New(slog.DiscardHandler)

// BookingManager holds the guest's active sunbed bookings.
type BookingManager struct {
	quota    int
	bookings []model.Booking
	log      *slog.Logger
}

func NewBookingManager(quota int, log *slog.Logger) *BookingManager {
	if log == nil {
		log = discardLogger
	}
	if quota < 0 {
		quota = 0
	}
	return &BookingManager{quota: quota, log: log}
}

// Book reserves every id for durationMinutes (DefaultBookingMinutes when not
// positive). The whole request is rejected without changes when it would
// exceed the quota or touch an already booked sunbed.
func (b *BookingManager) Book(ids []string, durationMinutes int) ([]model.Booking, error) {
	if len(ids) == 0 {
		return nil, ErrNoSunbeds
	}
	if durationMinutes <= 0 {
		durationMinutes = DefaultBookingMinutes
	}
	if len(b.bookings)+len(ids) > b.quota {
		return nil, fmt.Errorf("%w: %d active, %d requested, quota %d", ErrQuotaExceeded, len(b.bookings), len(ids), b.quota)
	}

	requested := map[string]bool{}
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return nil, ErrInvalidSunbed
		}
		if requested[id] || b.IsBooked(id) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyBooked, id)
		}
		requested[id] = true
	}

	created := make([]model.Booking, 0, len(ids))
	for _, id := range ids {
		booking := model.Booking{SunbedID: id, DurationSeconds: durationMinutes * 60}
		b.bookings = append(b.bookings, booking)
		created = append(created, booking)
	}
	b.log.Info("sunbeds booked", slog.Any("sunbed_ids", ids), slog.Int("minutes", durationMinutes))
	return created, nil
}

// Release drops the booking for id. Releasing an unknown id is a no-op.
func (b *BookingManager) Release(id string) bool {
	for i, booking := range b.bookings {
		if booking.SunbedID == id {
			b.bookings = append(b.bookings[:i], b.bookings[i+1:]...)
			b.log.Info("sunbed released", slog.String("sunbed_id", id))
			return true
		}
	}
	return false
}

// Extend adds incrementSeconds (DefaultExtendSeconds when not positive) to the
// remaining time of id, whatever that time currently is.
func (b *BookingManager) Extend(id string, incrementSeconds int) bool {
	if incrementSeconds <= 0 {
		incrementSeconds = DefaultExtendSeconds
	}
	i := b.index(id)
	if i < 0 {
		return false
	}
	b.bookings[i].DurationSeconds += incrementSeconds
	b.log.Info("booking extended", slog.String("sunbed_id", id), slog.Int("remaining", b.bookings[i].DurationSeconds))
	return true
}

// CanExtend reports whether id is inside its last five minutes.
func (b *BookingManager) CanExtend(id string) bool {
	i := b.index(id)
	return i >= 0 && b.bookings[i].DurationSeconds <= ExtendWindowSeconds
}

// Tick counts one second off id. Time stops at zero; the booking stays until
// the guest releases it.
func (b *BookingManager) Tick(id string) (int, bool) {
	i := b.index(id)
	if i < 0 {
		return 0, false
	}
	if b.bookings[i].DurationSeconds > 0 {
		b.bookings[i].DurationSeconds--
		if b.bookings[i].DurationSeconds == 0 {
			b.log.Debug("booking timer reached zero", slog.String("sunbed_id", id))
		}
	}
	return b.bookings[i].DurationSeconds, true
}

func (b *BookingManager) Get(id string) (model.Booking, bool) {
	i := b.index(id)
	if i < 0 {
		return model.Booking{}, false
	}
	return b.bookings[i], true
}

func (b *BookingManager) IsBooked(id string) bool {
	return b.index(id) >= 0
}

// Bookings returns a copy of the active bookings in booking order.
func (b *BookingManager) Bookings() []model.Booking {
	return append([]model.Booking(nil), b.bookings...)
}

func (b *BookingManager) Count() int {
	return len(b.bookings)
}

func (b *BookingManager) Quota() int {
	return b.quota
}

func (b *BookingManager) RemainingQuota() int {
	return max(0, b.quota-len(b.bookings))
}

func (b *BookingManager) index(id string) int {
	for i, booking := range b.bookings {
		if booking.SunbedID == id {
			return i
		}
	}
	return -1
}

// FormatRemaining renders a countdown as "1h 5m 3s" or "4m 59s".
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	if hrs > 0 {
		return fmt.Sprintf("%dh %dm %ds", hrs, mins, secs)
	}
	return fmt.Sprintf("%dm %ds", mins, secs)
}

// FormatDuration renders a booking length for confirmations.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
