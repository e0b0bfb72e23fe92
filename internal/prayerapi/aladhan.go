// Package prayerapi is the fallback source of prayer times when a mosque
// site yields nothing: the AlAdhan calculation API. It supplies Adhan times
// only; Iqama schedules and Jumaa details are mosque-specific and cannot
// come from here.
package prayerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sabeel-labs/catchaprayer/internal/model"
	"github.com/sabeel-labs/catchaprayer/internal/prayertime"
)

const (
	defaultBaseURL = "https://api.aladhan.com"

	// Islamic Society of North America calculation method.
	methodISNA = 2
)

// Client queries AlAdhan daily timings.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client against the public API. baseURL overrides are for
// tests; pass "" for the default.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

var apiPrayerNames = map[string]model.PrayerName{
	"Fajr":    model.Fajr,
	"Dhuhr":   model.Dhuhr,
	"Asr":     model.Asr,
	"Maghrib": model.Maghrib,
	"Isha":    model.Isha,
}

// Timings fetches Adhan times for the location on the given day. Times come
// back normalized to HH:MM; entries the API omits or mangles are skipped.
func (c *Client) Timings(ctx context.Context, lat, lng float64, day time.Time) ([]model.Prayer, error) {
	endpoint := fmt.Sprintf("%s/v1/timings/%s", c.baseURL, day.Format("02-01-2006"))
	query := url.Values{
		"latitude":  {fmt.Sprintf("%f", lat)},
		"longitude": {fmt.Sprintf("%f", lng)},
		"method":    {fmt.Sprintf("%d", methodISNA)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prayerapi: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prayerapi: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Code int `json:"code"`
		Data struct {
			Timings map[string]string `json:"timings"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("prayerapi: decode: %w", err)
	}
	if payload.Code != http.StatusOK {
		return nil, fmt.Errorf("prayerapi: api code %d", payload.Code)
	}

	var prayers []model.Prayer
	for _, name := range model.CycleOrder {
		for apiName, mapped := range apiPrayerNames {
			if mapped != name {
				continue
			}
			raw, ok := payload.Data.Timings[apiName]
			if !ok {
				continue
			}
			normalized, err := prayertime.NormalizeClock(raw)
			if err != nil {
				log.Warn().Str("prayer", apiName).Str("raw", raw).Msg("aladhan returned unparseable time")
				continue
			}
			prayers = append(prayers, model.Prayer{Name: mapped, AdhanTime: normalized})
		}
	}
	return prayers, nil
}
