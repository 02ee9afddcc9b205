package service

import (
	"strings"

	"resort-concierge/model"
)

// AvailableSunbeds lists catalog sunbeds that are free and not held by the guest.
func AvailableSunbeds(sunbeds []model.Sunbed, bookings *BookingManager) []model.Sunbed {
	var out []model.Sunbed
	for _, sunbed := range sunbeds {
		if sunbed.Status == model.SunbedAvailable && !bookings.IsBooked(sunbed.ID) {
			out = append(out, sunbed)
		}
	}
	return out
}

// OccupiedSunbeds lists sunbeds taken by other guests or by the guest's own bookings.
func OccupiedSunbeds(sunbeds []model.Sunbed, bookings *BookingManager) []model.Sunbed {
	var out []model.Sunbed
	for _, sunbed := range sunbeds {
		if IsOccupied(sunbed, bookings) {
			out = append(out, sunbed)
		}
	}
	return out
}

// IsOccupied derives occupancy from the catalog status and active bookings.
func IsOccupied(sunbed model.Sunbed, bookings *BookingManager) bool {
	return sunbed.Status == model.SunbedOccupied || bookings.IsBooked(sunbed.ID)
}

func ComingSoonSunbeds(sunbeds []model.Sunbed) []model.Sunbed {
	var out []model.Sunbed
	for _, sunbed := range sunbeds {
		if sunbed.Status == model.SunbedComingSoon {
			out = append(out, sunbed)
		}
	}
	return out
}

// Zones returns the distinct zones in first-seen order.
func Zones(sunbeds []model.Sunbed) []string {
	seen := map[string]bool{}
	var zones []string
	for _, sunbed := range sunbeds {
		if !seen[sunbed.Zone] {
			seen[sunbed.Zone] = true
			zones = append(zones, sunbed.Zone)
		}
	}
	return zones
}

// FilterSunbeds keeps sunbeds in one of zones (all zones when empty) whose id
// or zone contains query, case-insensitively.
func FilterSunbeds(sunbeds []model.Sunbed, query string, zones []string) []model.Sunbed {
	query = strings.ToLower(strings.TrimSpace(query))
	allowed := map[string]bool{}
	for _, zone := range zones {
		allowed[zone] = true
	}

	var out []model.Sunbed
	for _, sunbed := range sunbeds {
		if len(allowed) > 0 && !allowed[sunbed.Zone] {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(sunbed.ID), query) &&
			!strings.Contains(strings.ToLower(sunbed.Zone), query) {
			continue
		}
		out = append(out, sunbed)
	}
	return out
}

type ZoneGroup struct {
	Zone    string
	Sunbeds []model.Sunbed
}

// GroupByZone buckets sunbeds by zone, keeping zone and sunbed order.
func GroupByZone(sunbeds []model.Sunbed) []ZoneGroup {
	var groups []ZoneGroup
	index := map[string]int{}
	for _, sunbed := range sunbeds {
		i, ok := index[sunbed.Zone]
		if !ok {
			i = len(groups)
			index[sunbed.Zone] = i
			groups = append(groups, ZoneGroup{Zone: sunbed.Zone})
		}
		groups[i].Sunbeds = append(groups[i].Sunbeds, sunbed)
	}
	return groups
}
