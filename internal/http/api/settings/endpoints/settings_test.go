package endpoints

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabeel-labs/catchaprayer/internal/http/api"
)

func router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api"}, SettingsModule())
	return r
}

func TestGetSettingsDefaultsWithoutDatabase(t *testing.T) {
	w := httptest.NewRecorder()
	router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"max_search_radius": 5,
		"distance_unit": "km",
		"prayer_buffer_minutes": 10,
		"show_iqama_times": true,
		"show_adhan_times": true
	}`, w.Body.String())
}

func TestUpdateSettingsEchoesSavedValues(t *testing.T) {
	body := `{
		"max_search_radius": 10,
		"distance_unit": "mi",
		"prayer_buffer_minutes": 5,
		"show_iqama_times": true,
		"show_adhan_times": false
	}`
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, body, w.Body.String())
}

func TestUpdateSettingsRejectsBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"max_search_radius":`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
