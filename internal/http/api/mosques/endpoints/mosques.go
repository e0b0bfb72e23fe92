package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/sabeel-labs/catchaprayer/internal/http/api"
	"github.com/sabeel-labs/catchaprayer/internal/http/api/mosques/packets"
	"github.com/sabeel-labs/catchaprayer/internal/model"
	"github.com/sabeel-labs/catchaprayer/internal/places"
	"github.com/sabeel-labs/catchaprayer/internal/prayers"
	"github.com/sabeel-labs/catchaprayer/internal/prayertime"
	"github.com/sabeel-labs/catchaprayer/internal/tz"
)

// defaultTravelMinutes stands in when the directions lookup fails, so a
// mosque without a route estimate still gets a catchability verdict.
const defaultTravelMinutes = 15

type MosqueController struct {
	places  *places.Client // nil when no API key is configured
	prayers *prayers.Service
}

func newMosqueController(placesClient *places.Client, prayerSvc *prayers.Service) *MosqueController {
	return &MosqueController{places: placesClient, prayers: prayerSvc}
}

// MosqueModule mounts the mosque discovery and catchability endpoints.
func MosqueModule(placesClient *places.Client, prayerSvc *prayers.Service) api.Module {
	ctl := newMosqueController(placesClient, prayerSvc)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/mosques/nearby", ctl.findNearby)
		c.GET("/mosques/:place_id/next-prayer", ctl.nextPrayer)
	})
}

// POST /api/mosques/nearby
func (m *MosqueController) findNearby(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LocationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if m.places == nil {
		return nil, &api.APIError{Code: http.StatusServiceUnavailable, Message: "mosque discovery service not available"}
	}

	mosques, err := m.places.FindNearbyMosques(ctx, request.Latitude, request.Longitude, request.RadiusKm)
	if err != nil {
		log.Error().Err(err).Msg("mosque discovery failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to find nearby mosques"}
	}

	now := travelerNow(request.ClientCurrentTime)
	for i := range mosques {
		m.enrich(ctx, &mosques[i], now, request.ClientTimezone)
	}

	return packets.MosqueResponse{
		Mosques: mosques,
		UserLocation: model.Location{
			Latitude:  request.Latitude,
			Longitude: request.Longitude,
		},
	}, nil
}

// GET /api/mosques/:place_id/next-prayer?user_lat=&user_lng=
func (m *MosqueController) nextPrayer(ctx *gin.Context) (any, *api.APIError) {
	if m.places == nil {
		return nil, &api.APIError{Code: http.StatusServiceUnavailable, Message: "mosque discovery service not available"}
	}

	userLat, errLat := strconv.ParseFloat(ctx.Query("user_lat"), 64)
	userLng, errLng := strconv.ParseFloat(ctx.Query("user_lng"), 64)
	if errLat != nil || errLng != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "user_lat and user_lng are required"}
	}

	mosque, err := m.places.MosqueByPlaceID(ctx, ctx.Param("place_id"), userLat, userLng)
	if err != nil {
		log.Error().Err(err).Str("place_id", ctx.Param("place_id")).Msg("mosque lookup failed")
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "mosque not found"}
	}

	m.enrich(ctx, mosque, travelerNow(ctx.Query("client_current_time")), ctx.Query("client_timezone"))
	if mosque.NextPrayer == nil {
		return gin.H{"message": "no prayer info available"}, nil
	}
	return mosque.NextPrayer, nil
}

// enrich attaches today's catalog and the catchability verdict to a mosque.
// Every failure degrades: unresolved timezones become UTC, a failed
// directions lookup falls back to a default travel estimate, missing prayer
// data leaves NextPrayer nil, and the mosque is still returned.
func (m *MosqueController) enrich(ctx *gin.Context, mosque *model.Mosque, now time.Time, clientTZ string) {
	loc, err := tz.Resolve(&mosque.Location.Latitude, &mosque.Location.Longitude, clientTZ)
	if err != nil {
		log.Warn().Str("mosque", mosque.Name).Msg("mosque timezone unresolved, using UTC")
		loc = time.UTC
	}

	travelMinutes := defaultTravelMinutes
	if mosque.TravelInfo != nil {
		travelMinutes = mosque.TravelInfo.DurationSeconds / 60
	}

	nowLocal, arrivalLocal := prayertime.Arrive(now, travelMinutes, loc)
	mosque.Prayers = m.prayers.MosquePrayers(ctx, mosque, nowLocal)

	if len(mosque.Prayers) == 0 {
		return
	}
	catalog := prayertime.BuildCatalog(mosque.Prayers, nowLocal)
	mosque.NextPrayer = prayertime.Classify(catalog, nowLocal, arrivalLocal, travelMinutes)
}

// travelerNow parses the client-reported instant, falling back to the server
// clock in UTC when it is absent or malformed.
func travelerNow(raw string) time.Time {
	if raw == "" {
		return time.Now().UTC()
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		log.Warn().Str("client_current_time", raw).Msg("unparseable client time, using server clock")
		return time.Now().UTC()
	}
	return t
}
