package adminControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowmora/storefront-api/models"
	"github.com/glowmora/storefront-api/store"
)

func newTestRouter() (*gin.Engine, *store.MemoryStore) {
	gin.SetMode(gin.TestMode)
	mem := store.NewMemoryStore()

	r := gin.New()
	r.GET("/admin/settings", GetStoreSettings(mem))
	r.PUT("/admin/settings", UpdateStoreSettings(mem))
	r.GET("/admin/settings/notifications", GetNotificationSettings(mem))
	r.PUT("/admin/settings/notifications", UpdateNotificationSettings(mem))
	r.GET("/admin/settings/maintenance", GetMaintenanceMode(mem))
	r.PUT("/admin/settings/maintenance", SetMaintenanceMode(mem))
	return r, mem
}

func TestStoreSettingsDefaults(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/settings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.StoreSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, defaultStoreSettings, got)
}

func TestStoreSettingsRoundtrip(t *testing.T) {
	r, _ := newTestRouter()

	body := `{"storeName":"GlowMora","storeEmail":"hi@glowmora.com","storePhone":"+33 1 23 45 67 89","storeAddress":"2 Rue des Roses, Lyon","storeDescription":"Clean beauty"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/settings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.StoreSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "GlowMora", got.StoreName)
	assert.Equal(t, "hi@glowmora.com", got.StoreEmail)
}

func TestMaintenanceModeDefaultsOff(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/settings/maintenance", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"enabled":false}`, w.Body.String())
}

func TestMaintenanceModeToggle(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/settings/maintenance", strings.NewReader(`{"enabled":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/settings/maintenance", nil))
	assert.JSONEq(t, `{"enabled":true}`, w.Body.String())

	// Missing field is rejected, not treated as false.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/admin/settings/maintenance", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationSettingsRoundtrip(t *testing.T) {
	r, _ := newTestRouter()

	// Defaults before any save.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/settings/notifications", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.NotificationSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.EmailOnNewOrder)
	assert.False(t, got.DailyReports)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/settings/notifications", strings.NewReader(`{"emailOnNewOrder":false,"emailOnNewUser":true,"emailOnLowStock":false,"dailyReports":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/settings/notifications", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.DailyReports)
	assert.False(t, got.EmailOnNewOrder)
}
