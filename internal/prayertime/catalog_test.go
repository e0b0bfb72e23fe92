package prayertime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabeel-labs/catchaprayer/internal/model"
)

var testZone = time.FixedZone("PST", -8*3600)

// monday 2025-09-15
func testDay(hour, minute int) time.Time {
	return time.Date(2025, 9, 15, hour, minute, 0, 0, testZone)
}

func fullSchedule() []model.Prayer {
	return []model.Prayer{
		{Name: model.Fajr, AdhanTime: "05:50", IqamaTime: "06:00"},
		{Name: model.Dhuhr, AdhanTime: "12:45", IqamaTime: "13:00"},
		{Name: model.Asr, AdhanTime: "16:15", IqamaTime: "16:30"},
		{Name: model.Maghrib, AdhanTime: "19:10", IqamaTime: "19:20"},
		{Name: model.Isha, AdhanTime: "20:30", IqamaTime: "20:45"},
	}
}

func TestBuildCatalogOrdersByCongregation(t *testing.T) {
	// deliberately shuffled input
	prayers := []model.Prayer{
		{Name: model.Isha, AdhanTime: "20:30", IqamaTime: "20:45"},
		{Name: model.Fajr, AdhanTime: "05:50", IqamaTime: "06:00"},
		{Name: model.Maghrib, AdhanTime: "19:10", IqamaTime: "19:20"},
		{Name: model.Dhuhr, AdhanTime: "12:45", IqamaTime: "13:00"},
		{Name: model.Asr, AdhanTime: "16:15", IqamaTime: "16:30"},
	}

	cat := BuildCatalog(prayers, testDay(9, 0))
	require.Len(t, cat.Entries(), 5)

	want := []model.PrayerName{model.Fajr, model.Dhuhr, model.Asr, model.Maghrib, model.Isha}
	for i, e := range cat.Entries() {
		assert.Equal(t, want[i], e.Name)
	}
}

func TestBuildCatalogUsesIqamaWhenPresent(t *testing.T) {
	cat := BuildCatalog([]model.Prayer{
		{Name: model.Dhuhr, AdhanTime: "12:45", IqamaTime: "1:00 PM"},
		{Name: model.Asr, AdhanTime: "4:15 PM"},
	}, testDay(9, 0))
	require.Len(t, cat.Entries(), 2)

	dhuhr := cat.byName(model.Dhuhr)
	require.NotNil(t, dhuhr)
	assert.Equal(t, testDay(13, 0), dhuhr.Congregation)
	assert.Equal(t, testDay(12, 45), dhuhr.Adhan)
	assert.Equal(t, "13:00", dhuhr.TimeUsed)

	// no Iqama published: Adhan stands in
	asr := cat.byName(model.Asr)
	require.NotNil(t, asr)
	assert.Equal(t, testDay(16, 15), asr.Congregation)
	assert.Equal(t, "16:15", asr.TimeUsed)
}

func TestBuildCatalogDropsOnlyTheBadPrayer(t *testing.T) {
	cat := BuildCatalog([]model.Prayer{
		{Name: model.Fajr, AdhanTime: "05:50", IqamaTime: "06:00"},
		{Name: model.Dhuhr, AdhanTime: "around noon"},
		{Name: model.Asr, AdhanTime: "16:15", IqamaTime: "16:30"},
	}, testDay(9, 0))

	require.Len(t, cat.Entries(), 2)
	assert.Nil(t, cat.byName(model.Dhuhr))
	assert.NotNil(t, cat.byName(model.Fajr))
	assert.NotNil(t, cat.byName(model.Asr))
}

func TestBuildCatalogDedupesAndValidates(t *testing.T) {
	cat := BuildCatalog([]model.Prayer{
		{Name: model.Fajr, AdhanTime: "05:50", IqamaTime: "06:00"},
		{Name: model.Fajr, AdhanTime: "05:55", IqamaTime: "06:05"},
		{Name: "brunch", AdhanTime: "10:00"},
	}, testDay(9, 0))

	require.Len(t, cat.Entries(), 1)
	assert.Equal(t, testDay(6, 0), cat.Entries()[0].Congregation)
}

func TestBuildCatalogExcludesJumaaFromDailyCycle(t *testing.T) {
	prayers := []model.Prayer{
		{Name: model.Dhuhr, AdhanTime: "12:45", IqamaTime: "13:00"},
		{Name: model.Jumaa, AdhanTime: "13:30"},
	}

	for _, ref := range []time.Time{
		testDay(9, 0), // monday
		time.Date(2025, 9, 19, 9, 0, 0, 0, testZone), // friday
	} {
		cat := BuildCatalog(prayers, ref)
		require.Len(t, cat.Entries(), 1)
		assert.Equal(t, model.Dhuhr, cat.Entries()[0].Name)
	}
}

func TestCatalogEmpty(t *testing.T) {
	assert.True(t, BuildCatalog(nil, testDay(9, 0)).Empty())
	assert.False(t, BuildCatalog(fullSchedule(), testDay(9, 0)).Empty())
}

func TestNextInCycleSkipsMissingPrayers(t *testing.T) {
	cat := BuildCatalog([]model.Prayer{
		{Name: model.Fajr, AdhanTime: "05:50"},
		{Name: model.Maghrib, AdhanTime: "19:10"},
	}, testDay(9, 0))

	next := cat.nextInCycle(model.Fajr)
	require.NotNil(t, next)
	assert.Equal(t, model.Maghrib, next.Name)

	assert.Nil(t, cat.nextInCycle(model.Maghrib))
	assert.Nil(t, cat.nextInCycle(model.Isha))
}
