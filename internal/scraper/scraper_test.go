package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabeel-labs/catchaprayer/internal/model"
)

const scheduleTable = `<html><body><table>
	<tr><td>Fajr</td><td>5:50 AM</td><td>6:00 AM</td></tr>
	<tr><td>Dhuhr</td><td>12:45 PM</td><td>1:00 PM</td></tr>
	<tr><td>Asr</td><td>4:15 PM</td><td>4:30 PM</td></tr>
</table></body></html>`

func TestMosquePrayersFromMainPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(scheduleTable))
	}))
	defer srv.Close()

	prayers := New().MosquePrayers(context.Background(), srv.URL)
	require.Len(t, prayers, 3)
	assert.Equal(t, model.Fajr, prayers[0].Name)
	assert.Equal(t, "06:00", prayers[0].IqamaTime)
}

func TestMosquePrayersFollowsPrayerLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			w.Write([]byte(`<html><body><a href="/timetable">Prayer Times</a></body></html>`))
		case "/timetable":
			w.Write([]byte(scheduleTable))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	prayers := New().MosquePrayers(context.Background(), srv.URL+"/")
	require.Len(t, prayers, 3)
	assert.Equal(t, model.Dhuhr, prayers[1].Name)
}

func TestMosquePrayersProbesCommonPaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/prayer-times" {
			w.Write([]byte(scheduleTable))
			return
		}
		w.Write([]byte(`<html><body>Welcome to our mosque</body></html>`))
	}))
	defer srv.Close()

	prayers := New().MosquePrayers(context.Background(), srv.URL+"/")
	require.Len(t, prayers, 3)
}

func TestMosquePrayersSiteDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	assert.Nil(t, New().MosquePrayers(context.Background(), srv.URL))
}

func TestDiscoverPrayerPages(t *testing.T) {
	d := doc(t, `<html><body>
		<a href="/salah-schedule">Salah Schedule</a>
		<a href="https://other.example.com/times">Monthly Timetable</a>
		<a href="mailto:info@mosque.example.com">Contact</a>
		<a href="/about">About us</a>
	</body></html>`)

	pages := discoverPrayerPages(d, "https://mosque.example.com/")

	assert.Contains(t, pages, "https://mosque.example.com/salah-schedule")
	assert.Contains(t, pages, "https://other.example.com/times")
	assert.Contains(t, pages, "https://mosque.example.com/prayer-times")
	for _, p := range pages {
		assert.True(t, strings.HasPrefix(p, "http"), p)
		assert.NotContains(t, p, "mailto")
		assert.NotContains(t, p, "/about")
	}
}
