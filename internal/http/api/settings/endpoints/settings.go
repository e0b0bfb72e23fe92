package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sabeel-labs/catchaprayer/internal/db"
	"github.com/sabeel-labs/catchaprayer/internal/http/api"
	"github.com/sabeel-labs/catchaprayer/internal/model"
)

// SettingsModule mounts the traveler preferences endpoints. Settings persist
// when a database is configured and fall back to defaults otherwise.
func SettingsModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/settings", getSettings)
		c.PUT("/settings", updateSettings)
	})
}

// GET /api/settings
func getSettings(ctx *gin.Context) (any, *api.APIError) {
	settings, err := db.GetSettings()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}
	return settings, nil
}

// PUT /api/settings
func updateSettings(ctx *gin.Context) (any, *api.APIError) {
	var settings model.UserSettings
	if err := ctx.ShouldBindJSON(&settings); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if err := db.SaveSettings(settings); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}
	return settings, nil
}
