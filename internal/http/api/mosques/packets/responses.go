package packets

import "github.com/sabeel-labs/catchaprayer/internal/model"

type MosqueResponse struct {
	Mosques      []model.Mosque `json:"mosques"`
	UserLocation model.Location `json:"user_location"`
}
