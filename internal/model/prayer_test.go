package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrayerNameValid(t *testing.T) {
	for _, n := range CycleOrder {
		assert.True(t, n.Valid())
	}
	assert.True(t, Jumaa.Valid())
	assert.False(t, PrayerName("brunch").Valid())
	assert.False(t, PrayerName("").Valid())
}

func TestPrayerNameTitle(t *testing.T) {
	assert.Equal(t, "Fajr", Fajr.Title())
	assert.Equal(t, "Maghrib", Maghrib.Title())
	assert.Equal(t, "", PrayerName("").Title())
}

func TestCongregationTime(t *testing.T) {
	withIqama := Prayer{Name: Fajr, AdhanTime: "05:50", IqamaTime: "06:00"}
	assert.Equal(t, "06:00", withIqama.CongregationTime())

	adhanOnly := Prayer{Name: Fajr, AdhanTime: "05:50"}
	assert.Equal(t, "05:50", adhanOnly.CongregationTime())
}

func TestNextPrayerJSONOmitsAbsentFields(t *testing.T) {
	raw, err := json.Marshal(NextPrayer{Prayer: Dhuhr, Status: CanCatchWithImam, CanCatch: true})
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "time_until_next_prayer")
	assert.Contains(t, string(raw), `"status":"can_catch_with_imam"`)

	mins := 45
	raw, err = json.Marshal(NextPrayer{Prayer: Dhuhr, TimeUntilNextPrayer: &mins})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"time_until_next_prayer":45`)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 5, s.MaxSearchRadius)
	assert.Equal(t, "km", s.DistanceUnit)
	assert.Equal(t, 10, s.PrayerBufferMinutes)
	assert.True(t, s.ShowIqamaTimes)
	assert.True(t, s.ShowAdhanTimes)
}
