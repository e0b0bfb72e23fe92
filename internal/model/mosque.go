package model

// Location is a point on the map, optionally with a display address.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// TravelInfo is the directions collaborator's estimate for reaching a mosque.
type TravelInfo struct {
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
	DurationText    string `json:"duration_text"`
}

// Mosque is one discovered mosque, enriched with today's prayer catalog and
// the catchability verdict for the requesting traveler.
type Mosque struct {
	PlaceID          string      `json:"place_id"`
	Name             string      `json:"name"`
	Location         Location    `json:"location"`
	PhoneNumber      string      `json:"phone_number,omitempty"`
	Website          string      `json:"website,omitempty"`
	Rating           float32     `json:"rating,omitempty"`
	UserRatingsTotal int         `json:"user_ratings_total,omitempty"`
	TravelInfo       *TravelInfo `json:"travel_info,omitempty"`
	NextPrayer       *NextPrayer `json:"next_prayer,omitempty"`
	Prayers          []Prayer    `json:"prayers,omitempty"`
}

// UserSettings are the traveler-tunable preferences.
type UserSettings struct {
	MaxSearchRadius     int    `json:"max_search_radius" db:"max_search_radius"`
	DistanceUnit        string `json:"distance_unit" db:"distance_unit"`
	PrayerBufferMinutes int    `json:"prayer_buffer_minutes" db:"prayer_buffer_minutes"`
	ShowIqamaTimes      bool   `json:"show_iqama_times" db:"show_iqama_times"`
	ShowAdhanTimes      bool   `json:"show_adhan_times" db:"show_adhan_times"`
}

// DefaultSettings mirrors the values served before any settings are saved.
func DefaultSettings() UserSettings {
	return UserSettings{
		MaxSearchRadius:     5,
		DistanceUnit:        "km",
		PrayerBufferMinutes: 10,
		ShowIqamaTimes:      true,
		ShowAdhanTimes:      true,
	}
}
