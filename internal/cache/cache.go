// Package cache holds scraped prayer catalogs for a day at a time. It sits
// above the classification core, which itself never caches: the key is the
// mosque plus the calendar date in the mosque's own timezone, so a catalog
// expires naturally when the mosque's day rolls over.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sabeel-labs/catchaprayer/internal/model"
	"github.com/sabeel-labs/catchaprayer/internal/redis"
)

// Expiry bounds a catalog's lifetime even if the date key would keep it
// valid, e.g. when a mosque corrects its schedule mid-day.
const Expiry = 24 * time.Hour

// Key builds the per-mosque per-day cache key.
func Key(placeID string, localDay time.Time) string {
	return fmt.Sprintf("prayers:%s:%s", placeID, localDay.Format("2006-01-02"))
}

// GetCatalog returns the cached catalog for the mosque's current day, if any.
func GetCatalog(ctx context.Context, placeID string, localDay time.Time) ([]model.Prayer, bool) {
	raw, ok := redis.Get(ctx, Key(placeID, localDay))
	if !ok {
		return nil, false
	}
	var prayers []model.Prayer
	if err := json.Unmarshal([]byte(raw), &prayers); err != nil {
		log.Warn().Err(err).Str("place_id", placeID).Msg("discarding undecodable cached catalog")
		return nil, false
	}
	return prayers, true
}

// PutCatalog stores the catalog under the mosque's current day.
func PutCatalog(ctx context.Context, placeID string, localDay time.Time, prayers []model.Prayer) {
	raw, err := json.Marshal(prayers)
	if err != nil {
		log.Warn().Err(err).Str("place_id", placeID).Msg("could not encode catalog for cache")
		return
	}
	redis.Set(ctx, Key(placeID, localDay), string(raw), Expiry)
}
