// Package tz maps mosque coordinates to an IANA timezone. Lookup order:
// tz boundary data (point-in-polygon), a static coordinate-bucket table,
// then the traveler's own timezone. Callers that still end up with
// ErrTimezoneUnresolved are expected to fall back to UTC, never to abort.
package tz

import (
	"errors"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
	"github.com/rs/zerolog/log"
)

// ErrTimezoneUnresolved means neither coordinates nor the fallback produced
// a loadable timezone.
var ErrTimezoneUnresolved = errors.New("timezone unresolved")

// bucket is one static bounding-box rule; first match wins.
type bucket struct {
	minLat, maxLat float64
	minLng, maxLng float64
	zone           string
}

// buckets covers the regions the product launched in, used when the boundary
// lookup fails or its dataset is unavailable. Extend by appending rules.
var buckets = []bucket{
	// US Pacific coast
	{32.0, 42.0, -125.0, -117.0, "America/Los_Angeles"},
	// US Mountain (Denver metro and surroundings)
	{36.0, 41.5, -110.0, -102.0, "America/Denver"},
}

var (
	finderOnce sync.Once
	finder     tzf.F
)

// loadFinder builds the polygon finder once per process; the dataset costs
// tens of megabytes, so it is shared and never rebuilt.
func loadFinder() tzf.F {
	finderOnce.Do(func() {
		f, err := tzf.NewDefaultFinder()
		if err != nil {
			log.Error().Err(err).Msg("tz boundary data unavailable, falling back to bucket table")
			return
		}
		finder = f
	})
	return finder
}

// Resolve returns the mosque's timezone. Coordinates may be nil when the
// caller only knows the traveler's timezone string.
func Resolve(lat, lng *float64, fallbackTZ string) (*time.Location, error) {
	if lat != nil && lng != nil {
		if f := loadFinder(); f != nil {
			if name := f.GetTimezoneName(*lng, *lat); name != "" {
				if loc, err := time.LoadLocation(name); err == nil {
					return loc, nil
				}
				log.Warn().Str("zone", name).Msg("boundary lookup returned unloadable zone")
			}
		}
		for _, b := range buckets {
			if *lat >= b.minLat && *lat <= b.maxLat && *lng >= b.minLng && *lng <= b.maxLng {
				if loc, err := time.LoadLocation(b.zone); err == nil {
					return loc, nil
				}
			}
		}
	}

	if fallbackTZ != "" {
		if loc, err := time.LoadLocation(fallbackTZ); err == nil {
			return loc, nil
		}
		log.Warn().Str("zone", fallbackTZ).Msg("client timezone not loadable")
	}

	return nil, ErrTimezoneUnresolved
}
