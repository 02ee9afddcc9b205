package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resort-concierge/model"
)

func sampleSunbeds() []model.Sunbed {
	return []model.Sunbed{
		{ID: "A1", Zone: "Pool Area", Status: model.SunbedAvailable},
		{ID: "A2", Zone: "Pool Area", Status: model.SunbedOccupied},
		{ID: "A4", Zone: "Pool Area", Status: model.SunbedComingSoon, Description: "Available at 2:00 PM"},
		{ID: "B1", Zone: "Beach Front", Status: model.SunbedAvailable},
		{ID: "B8", Zone: "Beach Front", Status: model.SunbedMaintenance},
		{ID: "C1", Zone: "Garden View", Status: model.SunbedAvailable},
	}
}

func ids(sunbeds []model.Sunbed) []string {
	out := make([]string, 0, len(sunbeds))
	for _, sunbed := range sunbeds {
		out = append(out, sunbed.ID)
	}
	return out
}

func TestSunbedViews_CrossReferenceBookings(t *testing.T) {
	sunbeds := sampleSunbeds()
	mgr := NewBookingManager(2, nil)
	_, err := mgr.Book([]string{"B1"}, 120)
	require.NoError(t, err)

	assert.Equal(t, []string{"A1", "C1"}, ids(AvailableSunbeds(sunbeds, mgr)))
	assert.Equal(t, []string{"A2", "B1"}, ids(OccupiedSunbeds(sunbeds, mgr)))
	assert.Equal(t, []string{"A4"}, ids(ComingSoonSunbeds(sunbeds)))
	assert.Equal(t, model.SunbedAvailable, sunbeds[3].Status, "catalog must not be mutated")

	mgr.Release("B1")
	assert.Equal(t, []string{"A1", "B1", "C1"}, ids(AvailableSunbeds(sunbeds, mgr)))
}

func TestFilterSunbeds(t *testing.T) {
	sunbeds := sampleSunbeds()

	assert.Len(t, FilterSunbeds(sunbeds, "", nil), len(sunbeds))
	assert.Equal(t, []string{"A1", "A2", "A4"}, ids(FilterSunbeds(sunbeds, "a", []string{"Pool Area"})))
	assert.Equal(t, []string{"B1", "B8"}, ids(FilterSunbeds(sunbeds, "beach", nil)))
	assert.Equal(t, []string{"C1"}, ids(FilterSunbeds(sunbeds, " c1 ", nil)))
	assert.Empty(t, FilterSunbeds(sunbeds, "c1", []string{"Pool Area"}))
}

func TestZonesAndGroupByZone(t *testing.T) {
	sunbeds := sampleSunbeds()
	assert.Equal(t, []string{"Pool Area", "Beach Front", "Garden View"}, Zones(sunbeds))

	groups := GroupByZone([]model.Sunbed{sunbeds[3], sunbeds[0], sunbeds[4], sunbeds[1]})
	require.Len(t, groups, 2)
	assert.Equal(t, "Beach Front", groups[0].Zone)
	assert.Equal(t, []string{"B1", "B8"}, ids(groups[0].Sunbeds))
	assert.Equal(t, []string{"A1", "A2"}, ids(groups[1].Sunbeds))
}
