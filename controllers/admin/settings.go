package adminControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowmora/storefront-api/models"
	"github.com/glowmora/storefront-api/store"
)

// Defaults served until an admin saves a snapshot for the first time.
var defaultStoreSettings = models.StoreSettings{
	StoreName:        "BeautyHub",
	StoreEmail:       "contact@beautyhub.com",
	StorePhone:       "+1 (555) 123-4567",
	StoreAddress:     "123 Beauty Street, New York, NY 10001",
	StoreDescription: "Your one-stop shop for premium beauty products",
}

var defaultNotificationSettings = models.NotificationSettings{
	EmailOnNewOrder: true,
	EmailOnLowStock: true,
}

// GET /admin/settings
func GetStoreSettings(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings := defaultStoreSettings
		if err := s.Get(c.Request.Context(), store.KeyStoreSettings, &settings); err != nil && !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// PUT /admin/settings
func UpdateStoreSettings(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.StoreSettings
		if err := c.ShouldBindJSON(&settings); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := s.Set(c.Request.Context(), store.KeyStoreSettings, settings); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Store settings saved"})
	}
}

// GET /admin/settings/notifications
func GetNotificationSettings(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings := defaultNotificationSettings
		if err := s.Get(c.Request.Context(), store.KeyNotificationSettings, &settings); err != nil && !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// PUT /admin/settings/notifications
func UpdateNotificationSettings(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.NotificationSettings
		if err := c.ShouldBindJSON(&settings); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := s.Set(c.Request.Context(), store.KeyNotificationSettings, settings); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notification settings saved"})
	}
}

// GET /admin/settings/maintenance
func GetMaintenanceMode(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		enabled := false // absent key means the store is open
		if err := s.Get(c.Request.Context(), store.KeyMaintenanceMode, &enabled); err != nil && !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch maintenance mode"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"enabled": enabled})
	}
}

type MaintenanceInput struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// PUT /admin/settings/maintenance
func SetMaintenanceMode(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MaintenanceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := s.Set(c.Request.Context(), store.KeyMaintenanceMode, *input.Enabled); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save maintenance mode"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Maintenance mode updated", "enabled": *input.Enabled})
	}
}
