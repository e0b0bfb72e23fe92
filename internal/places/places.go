// Package places discovers nearby mosques through the Google Places and
// Directions APIs and ranks them by travel distance.
package places

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"googlemaps.github.io/maps"

	"github.com/sabeel-labs/catchaprayer/internal/model"
)

const maxResults = 20

// Searching for all three terms catches mosques whose Places listing only
// matches one of them.
var searchKeywords = []string{"mosque", "masjid", "islamic center"}

var mosqueKeywords = []string{"mosque", "masjid", "islamic", "muslim", "center", "community"}

// Listings that match a mosque keyword but are clearly something else.
var excludeKeywords = []string{"school", "store", "restaurant", "hotel", "hospital"}

// Client wraps the maps API for mosque discovery.
type Client struct {
	maps *maps.Client
}

// New builds a discovery client. An empty API key is an error; callers treat
// a nil client as "discovery unavailable".
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("places: missing API key")
	}
	mc, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("places: %w", err)
	}
	return &Client{maps: mc}, nil
}

// FindNearbyMosques searches around the traveler, filters out non-mosque
// places of worship, deduplicates by place ID, enriches each hit with
// details and travel info, and returns the closest results first.
func (c *Client) FindNearbyMosques(ctx context.Context, lat, lng float64, radiusKm int) ([]model.Mosque, error) {
	if radiusKm <= 0 {
		radiusKm = 5
	}
	origin := &maps.LatLng{Lat: lat, Lng: lng}

	unique := map[string]maps.PlacesSearchResult{}
	for _, keyword := range searchKeywords {
		resp, err := c.maps.NearbySearch(ctx, &maps.NearbySearchRequest{
			Location: origin,
			Radius:   uint(radiusKm * 1000),
			Keyword:  keyword,
			Type:     maps.PlaceType("place_of_worship"),
		})
		if err != nil {
			log.Warn().Err(err).Str("keyword", keyword).Msg("nearby search failed")
			continue
		}
		for _, place := range resp.Results {
			if place.PlaceID != "" && IsMosque(place.Name, place.Types) {
				unique[place.PlaceID] = place
			}
		}
	}

	mosques := make([]model.Mosque, 0, len(unique))
	for _, place := range unique {
		m, err := c.mosqueFromPlace(ctx, place, origin)
		if err != nil {
			log.Warn().Err(err).Str("place_id", place.PlaceID).Msg("skipping place")
			continue
		}
		mosques = append(mosques, m)
	}

	sort.Slice(mosques, func(i, j int) bool {
		return travelDistance(mosques[i]) < travelDistance(mosques[j])
	})
	if len(mosques) > maxResults {
		mosques = mosques[:maxResults]
	}
	return mosques, nil
}

// MosqueByPlaceID fetches a single mosque's details plus travel info from
// the traveler's position.
func (c *Client) MosqueByPlaceID(ctx context.Context, placeID string, userLat, userLng float64) (*model.Mosque, error) {
	details, err := c.maps.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskName,
			maps.PlaceDetailsFieldMaskGeometry,
			maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
			maps.PlaceDetailsFieldMaskWebsite,
			maps.PlaceDetailsFieldMaskRatings,
			maps.PlaceDetailsFieldMaskUserRatingsTotal,
			maps.PlaceDetailsFieldMaskVicinity,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("places: place details: %w", err)
	}

	m := &model.Mosque{
		PlaceID:     placeID,
		Name:        details.Name,
		PhoneNumber: details.FormattedPhoneNumber,
		Website:     details.Website,
		Rating:      details.Rating,
		Location: model.Location{
			Latitude:  details.Geometry.Location.Lat,
			Longitude: details.Geometry.Location.Lng,
			Address:   details.Vicinity,
		},
		UserRatingsTotal: details.UserRatingsTotal,
	}

	origin := &maps.LatLng{Lat: userLat, Lng: userLng}
	dest := &maps.LatLng{Lat: m.Location.Latitude, Lng: m.Location.Longitude}
	if travel, err := c.travelInfo(ctx, origin, dest); err == nil {
		m.TravelInfo = travel
	} else {
		log.Warn().Err(err).Str("place_id", placeID).Msg("directions lookup failed")
	}
	return m, nil
}

// IsMosque applies the listing heuristic: a mosque-ish name, the
// place_of_worship type, and none of the exclusion words.
func IsMosque(name string, types []string) bool {
	lower := strings.ToLower(name)

	hasKeyword := false
	for _, kw := range mosqueKeywords {
		if strings.Contains(lower, kw) {
			hasKeyword = true
			break
		}
	}

	isWorshipPlace := false
	for _, t := range types {
		if t == "place_of_worship" {
			isWorshipPlace = true
			break
		}
	}

	for _, kw := range excludeKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return hasKeyword && isWorshipPlace
}

func (c *Client) mosqueFromPlace(ctx context.Context, place maps.PlacesSearchResult, origin *maps.LatLng) (model.Mosque, error) {
	details, err := c.maps.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: place.PlaceID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
			maps.PlaceDetailsFieldMaskWebsite,
			maps.PlaceDetailsFieldMaskRatings,
			maps.PlaceDetailsFieldMaskUserRatingsTotal,
		},
	})
	if err != nil {
		return model.Mosque{}, fmt.Errorf("place details: %w", err)
	}

	m := model.Mosque{
		PlaceID:     place.PlaceID,
		Name:        place.Name,
		PhoneNumber: details.FormattedPhoneNumber,
		Website:     details.Website,
		Rating:      details.Rating,
		Location: model.Location{
			Latitude:  place.Geometry.Location.Lat,
			Longitude: place.Geometry.Location.Lng,
			Address:   place.Vicinity,
		},
		UserRatingsTotal: details.UserRatingsTotal,
	}

	dest := &maps.LatLng{Lat: m.Location.Latitude, Lng: m.Location.Longitude}
	if travel, err := c.travelInfo(ctx, origin, dest); err == nil {
		m.TravelInfo = travel
	} else {
		log.Warn().Err(err).Str("place_id", place.PlaceID).Msg("directions lookup failed")
	}
	return m, nil
}

func (c *Client) travelInfo(ctx context.Context, origin, dest *maps.LatLng) (*model.TravelInfo, error) {
	routes, _, err := c.maps.Directions(ctx, &maps.DirectionsRequest{
		Origin:        origin.String(),
		Destination:   dest.String(),
		Mode:          maps.TravelModeDriving,
		DepartureTime: "now",
	})
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	return &model.TravelInfo{
		DistanceMeters:  leg.Distance.Meters,
		DurationSeconds: int(leg.Duration.Seconds()),
		DurationText:    fmt.Sprintf("%d mins", int(leg.Duration.Minutes())),
	}, nil
}

func travelDistance(m model.Mosque) int {
	if m.TravelInfo == nil {
		return int(^uint(0) >> 1)
	}
	return m.TravelInfo.DistanceMeters
}
