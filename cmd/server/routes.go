package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sabeel-labs/catchaprayer/internal/http/api"
	mosqueapi "github.com/sabeel-labs/catchaprayer/internal/http/api/mosques/endpoints"
	settingsapi "github.com/sabeel-labs/catchaprayer/internal/http/api/settings/endpoints"
	"github.com/sabeel-labs/catchaprayer/internal/places"
	"github.com/sabeel-labs/catchaprayer/internal/prayers"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, placesClient *places.Client, prayerSvc *prayers.Service, dbReady bool) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Catch a Prayer API - find nearby mosques and prayer times"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"services": gin.H{
				"maps":     placesClient != nil,
				"settings": dbReady,
			},
		})
	})

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		mosqueapi.MosqueModule(placesClient, prayerSvc),
		settingsapi.SettingsModule(),
	)
}
