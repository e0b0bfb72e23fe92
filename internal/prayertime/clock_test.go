package prayertime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClock(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"06:30", "06:30"},
		{"6:30", "06:30"},
		{"6:30 AM", "06:30"},
		{"6:30AM", "06:30"},
		{"6:30 am", "06:30"},
		{"6:30 a.m.", "06:30"},
		{"1:15 PM", "13:15"},
		{"12:00 PM", "12:00"},
		{"12:00 AM", "00:00"},
		{"12:45pm", "12:45"},
		{"  7:05 ", "07:05"},
		{"5:30 PM (PDT)", "17:30"},
		{"00:00", "00:00"},
		{"23:59", "23:59"},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := NormalizeClock(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeClockRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		"",
		"noon",
		"25:00",
		"12:60",
		"13:00 PM",
		"0:30 AM",
		":30",
		"6-30",
		// a valid-looking prefix must never silently truncate
		"06:300",
		"12:455 PM",
		"6:30 banana",
		"6:30 AM - 7:00 AM",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := NormalizeClock(raw)
			require.ErrorIs(t, err, ErrUnparseableTime)
		})
	}
}

func TestAtClockAnchorsToRefDay(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	ref := time.Date(2025, 9, 15, 22, 41, 9, 0, loc)

	got, err := atClock("06:30", ref)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 15, 6, 30, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestClock12(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	assert.Equal(t, "6:00 AM", clock12(time.Date(2025, 9, 15, 6, 0, 0, 0, loc)))
	assert.Equal(t, "1:15 PM", clock12(time.Date(2025, 9, 15, 13, 15, 0, 0, loc)))
	assert.Equal(t, "12:00 AM", clock12(time.Date(2025, 9, 15, 0, 0, 0, 0, loc)))
}

func TestMinutesUntil(t *testing.T) {
	base := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, minutesUntil(base, base.Add(30*time.Minute)))
	assert.Equal(t, 0, minutesUntil(base, base))
	// floors, never rounds up
	assert.Equal(t, 29, minutesUntil(base, base.Add(29*time.Minute+59*time.Second)))
	// never negative
	assert.Equal(t, 0, minutesUntil(base, base.Add(-10*time.Minute)))
}
