// Package prayers assembles a mosque's daily prayer catalog from whichever
// source can supply it: cache, the mosque's own website, the AlAdhan
// fallback API, or a static default schedule. The classification core only
// ever sees the resulting []model.Prayer.
package prayers

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sabeel-labs/catchaprayer/internal/cache"
	"github.com/sabeel-labs/catchaprayer/internal/model"
	"github.com/sabeel-labs/catchaprayer/internal/prayerapi"
	"github.com/sabeel-labs/catchaprayer/internal/scraper"
)

// Service coordinates the catalog sources.
type Service struct {
	scraper *scraper.Scraper
	api     *prayerapi.Client
}

func NewService(s *scraper.Scraper, api *prayerapi.Client) *Service {
	return &Service{scraper: s, api: api}
}

// MosquePrayers returns today's catalog for the mosque, in mosque-local
// wall-clock times. localDay anchors the cache key to the mosque's own
// calendar date. The result is never empty: with every source down the
// static default schedule stands in, so the caller can still answer with a
// generic "no prayer info" style result instead of failing.
func (s *Service) MosquePrayers(ctx context.Context, mosque *model.Mosque, localDay time.Time) []model.Prayer {
	if mosque.PlaceID != "" {
		if prayers, ok := cache.GetCatalog(ctx, mosque.PlaceID, localDay); ok {
			return prayers
		}
	}

	prayers := s.lookup(ctx, mosque, localDay)

	if mosque.PlaceID != "" {
		cache.PutCatalog(ctx, mosque.PlaceID, localDay, prayers)
	}
	return prayers
}

func (s *Service) lookup(ctx context.Context, mosque *model.Mosque, localDay time.Time) []model.Prayer {
	var scraped []model.Prayer
	if mosque.Website != "" {
		scraped = s.scraper.MosquePrayers(ctx, mosque.Website)
		if len(scraped) >= 3 {
			// Good mosque data: Iqama times and Jumaa details included.
			return scraped
		}
		if len(scraped) > 0 {
			log.Info().Str("mosque", mosque.Name).Int("count", len(scraped)).
				Msg("partial mosque schedule, supplementing from prayer times API")
		}
	}

	if s.api != nil && (mosque.Location.Latitude != 0 || mosque.Location.Longitude != 0) {
		apiPrayers, err := s.api.Timings(ctx, mosque.Location.Latitude, mosque.Location.Longitude, localDay)
		if err != nil {
			log.Warn().Err(err).Str("mosque", mosque.Name).Msg("prayer times API fallback failed")
		} else if len(apiPrayers) > 0 {
			// Mosque data wins per prayer; the API only fills gaps, since
			// it knows nothing of this mosque's Iqama schedule.
			return merge(scraped, apiPrayers)
		}
	}

	if len(scraped) > 0 {
		return scraped
	}

	log.Warn().Str("mosque", mosque.Name).Msg("no prayer source available, using default schedule")
	return DefaultPrayers()
}

// merge overlays API prayers beneath mosque-scraped ones.
func merge(mosque, api []model.Prayer) []model.Prayer {
	if len(mosque) == 0 {
		return api
	}
	have := map[model.PrayerName]bool{}
	for _, p := range mosque {
		have[p.Name] = true
	}
	out := append([]model.Prayer{}, mosque...)
	for _, p := range api {
		if !have[p.Name] {
			out = append(out, p)
		}
	}
	return out
}

// DefaultPrayers is the last-resort schedule, usable enough for the Bay
// Area launch market that the answer stays plausible when everything else
// is down.
func DefaultPrayers() []model.Prayer {
	return []model.Prayer{
		{Name: model.Fajr, AdhanTime: "05:50", IqamaTime: "06:00"},
		{Name: model.Dhuhr, AdhanTime: "12:45", IqamaTime: "13:00"},
		{Name: model.Asr, AdhanTime: "16:15", IqamaTime: "16:30"},
		{Name: model.Maghrib, AdhanTime: "19:10", IqamaTime: "19:20"},
		{Name: model.Isha, AdhanTime: "20:30", IqamaTime: "20:45"},
	}
}
