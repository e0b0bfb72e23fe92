package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/sabeel-labs/catchaprayer/internal/model"
)

// GetSettings returns the saved traveler settings, or the defaults when
// nothing has been saved (or no database is configured).
func GetSettings() (model.UserSettings, error) {
	if DB == nil {
		return model.DefaultSettings(), nil
	}

	var s model.UserSettings
	const q = `
	SELECT max_search_radius, distance_unit, prayer_buffer_minutes,
	       show_iqama_times, show_adhan_times
	  FROM user_settings
	 WHERE id = 1;`
	err := DB.Get(&s, q)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		log.Error().Err(err).Msg("GetSettings failed")
		return model.UserSettings{}, err
	}
	return s, nil
}

// SaveSettings upserts the single settings row.
func SaveSettings(s model.UserSettings) error {
	if DB == nil {
		return nil
	}

	const q = `
	INSERT INTO user_settings (id, max_search_radius, distance_unit,
	                           prayer_buffer_minutes, show_iqama_times,
	                           show_adhan_times, updated_at)
	VALUES (1, $1, $2, $3, $4, $5, now())
	ON CONFLICT (id) DO UPDATE
	   SET max_search_radius     = EXCLUDED.max_search_radius,
	       distance_unit         = EXCLUDED.distance_unit,
	       prayer_buffer_minutes = EXCLUDED.prayer_buffer_minutes,
	       show_iqama_times      = EXCLUDED.show_iqama_times,
	       show_adhan_times      = EXCLUDED.show_adhan_times,
	       updated_at            = now();`
	if _, err := DB.Exec(q, s.MaxSearchRadius, s.DistanceUnit, s.PrayerBufferMinutes,
		s.ShowIqamaTimes, s.ShowAdhanTimes); err != nil {
		log.Error().Err(err).Msg("SaveSettings failed")
		return err
	}
	return nil
}
