package prayerapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabeel-labs/catchaprayer/internal/model"
)

func TestTimings(t *testing.T) {
	day := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/timings/15-09-2025", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("method"))
		assert.NotEmpty(t, r.URL.Query().Get("latitude"))
		assert.NotEmpty(t, r.URL.Query().Get("longitude"))

		w.Write([]byte(`{"code":200,"data":{"timings":{
			"Fajr":"05:31","Sunrise":"06:48","Dhuhr":"13:05",
			"Asr":"16:38","Maghrib":"19:21","Isha":"20:38"}}}`))
	}))
	defer srv.Close()

	prayers, err := New(srv.URL).Timings(context.Background(), 37.77, -122.42, day)
	require.NoError(t, err)
	require.Len(t, prayers, 5)

	// cycle order, Adhan only
	assert.Equal(t, model.Prayer{Name: model.Fajr, AdhanTime: "05:31"}, prayers[0])
	assert.Equal(t, model.Prayer{Name: model.Isha, AdhanTime: "20:38"}, prayers[4])
	for _, p := range prayers {
		assert.Empty(t, p.IqamaTime)
	}
}

func TestTimingsSkipsMangledEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":200,"data":{"timings":{
			"Fajr":"05:31","Dhuhr":"midday","Asr":"16:38"}}}`))
	}))
	defer srv.Close()

	prayers, err := New(srv.URL).Timings(context.Background(), 37.77, -122.42, time.Now())
	require.NoError(t, err)
	require.Len(t, prayers, 2)
	assert.Equal(t, model.Fajr, prayers[0].Name)
	assert.Equal(t, model.Asr, prayers[1].Name)
}

func TestTimingsErrors(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := New(srv.URL).Timings(context.Background(), 37.77, -122.42, time.Now())
		require.Error(t, err)
	})

	t.Run("api error code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":400,"data":{}}`))
		}))
		defer srv.Close()

		_, err := New(srv.URL).Timings(context.Background(), 37.77, -122.42, time.Now())
		require.Error(t, err)
	})
}

func TestNewDefaultsBaseURL(t *testing.T) {
	assert.Equal(t, defaultBaseURL, New("").baseURL)
}
