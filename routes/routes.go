package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowmora/storefront-api/cart"
	"github.com/glowmora/storefront-api/orders"
	"github.com/glowmora/storefront-api/store"
	"github.com/glowmora/storefront-api/wishlist"
)

// Services bundles everything the route groups need.
type Services struct {
	DB       *gorm.DB
	Store    store.Store
	Cart     *cart.Service
	Wishlist *wishlist.Service
	Orders   *orders.Service
}

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, svc Services) {
	// 1️⃣ Public catalog routes (no middleware)
	SetupPublicRoutes(r, svc)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, svc)

	// 3️⃣ Admin routes (API-Key-protected)
	SetupAdminRoutes(r, svc)
}
