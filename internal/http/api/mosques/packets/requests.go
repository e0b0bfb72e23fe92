package packets

// LocationRequest is the traveler's position plus optional context for
// timezone-correct catchability math. ClientCurrentTime is ISO-8601 with a
// UTC offset; absent means the server clock decides.
type LocationRequest struct {
	Latitude          float64 `json:"latitude" binding:"required"`
	Longitude         float64 `json:"longitude" binding:"required"`
	RadiusKm          int     `json:"radius_km"`
	ClientTimezone    string  `json:"client_timezone"`     // e.g. "America/Los_Angeles"
	ClientCurrentTime string  `json:"client_current_time"` // RFC 3339
}
