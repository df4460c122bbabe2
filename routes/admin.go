package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/glowmora/storefront-api/controllers/admin"
	orderControllers "github.com/glowmora/storefront-api/controllers/order"
	productControllers "github.com/glowmora/storefront-api/controllers/product"
	userControllers "github.com/glowmora/storefront-api/controllers/user"
	"github.com/glowmora/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, svc Services) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Directory ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(svc.DB))
		adminGroup.DELETE("/users/:id", userControllers.DeleteUser(svc.DB))

		// ─────────── Order Management ───────────
		adminGroup.GET("/orders", orderControllers.GetOrders(svc.Orders))
		adminGroup.PATCH("/orders/:id/status", orderControllers.UpdateOrderStatus(svc.Orders))
		adminGroup.GET("/analytics", orderControllers.GetAnalytics(svc.Orders))

		// ─────────── Catalog Management ───────────
		adminGroup.PUT("/products", productControllers.ReplaceProducts(svc.Store))

		// ─────────── Store Settings ───────────
		settings := adminGroup.Group("/settings")
		{
			settings.GET("", adminControllers.GetStoreSettings(svc.Store))
			settings.PUT("", adminControllers.UpdateStoreSettings(svc.Store))
			settings.GET("/notifications", adminControllers.GetNotificationSettings(svc.Store))
			settings.PUT("/notifications", adminControllers.UpdateNotificationSettings(svc.Store))
			settings.GET("/maintenance", adminControllers.GetMaintenanceMode(svc.Store))
			settings.PUT("/maintenance", adminControllers.SetMaintenanceMode(svc.Store))
		}
	}
}
