package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultGuestName         = "John Smith"
	defaultHotelName         = "Grand Paradise Resort"
	defaultRoomNumber        = "305"
	defaultSunbedQuota       = 2
	defaultWaiterAutoResolve = 30 * time.Second
	defaultRoomAutoResolve   = 90 * time.Second
)

// Config holds everything the concierge reads from the environment.
type Config struct {
	GuestName   string
	HotelName   string
	RoomNumber  string
	SunbedQuota int

	// Demo staff simulation: open requests older than these are marked done.
	WaiterAutoResolve time.Duration
	RoomAutoResolve   time.Duration

	CatalogPath string

	LogLevel string
	LogFile  string
	Debug    bool
}

// Load reads a .env file when present and builds the configuration from the
// process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GuestName:   getEnv("CONCIERGE_GUEST_NAME", defaultGuestName),
		HotelName:   getEnv("CONCIERGE_HOTEL_NAME", defaultHotelName),
		RoomNumber:  getEnv("CONCIERGE_ROOM_NUMBER", defaultRoomNumber),
		CatalogPath: getEnv("CONCIERGE_CATALOG", ""),
		LogLevel:    getEnv("CONCIERGE_LOG_LEVEL", "info"),
		LogFile:     getEnv("CONCIERGE_LOG_FILE", ""),
		Debug:       getBoolEnv("CONCIERGE_DEBUG", false),
	}

	var err error
	if cfg.SunbedQuota, err = getIntEnv("CONCIERGE_SUNBED_QUOTA", defaultSunbedQuota); err != nil {
		return nil, err
	}
	if cfg.WaiterAutoResolve, err = getDurationEnv("CONCIERGE_WAITER_AUTO_RESOLVE", defaultWaiterAutoResolve); err != nil {
		return nil, err
	}
	if cfg.RoomAutoResolve, err = getDurationEnv("CONCIERGE_ROOM_AUTO_RESOLVE", defaultRoomAutoResolve); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values for consistency.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GuestName) == "" {
		return fmt.Errorf("CONCIERGE_GUEST_NAME must not be empty")
	}
	if c.SunbedQuota < 1 {
		return fmt.Errorf("CONCIERGE_SUNBED_QUOTA must be at least 1, got %d", c.SunbedQuota)
	}
	if c.WaiterAutoResolve <= 0 || c.RoomAutoResolve <= 0 {
		return fmt.Errorf("auto-resolve delays must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}

func getBoolEnv(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}
