package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/glowmora/storefront-api/controllers/cart"
	orderControllers "github.com/glowmora/storefront-api/controllers/order"
	productControllers "github.com/glowmora/storefront-api/controllers/product"
	wishlistControllers "github.com/glowmora/storefront-api/controllers/wishlist"
	"github.com/glowmora/storefront-api/middleware"
)

// SetupPublicRoutes registers the catalog endpoints; no auth required.
func SetupPublicRoutes(r *gin.Engine, svc Services) {
	r.GET("/products", productControllers.GetProducts(svc.Store))
	r.GET("/products/:id", productControllers.GetProductByID(svc.Store))
}

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, svc Services) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(svc.Cart))               // GET /user/cart
			cartGroup.POST("", cartControllers.AddCartItem(svc.Cart))          // POST /user/cart
			cartGroup.PUT("/:id", cartControllers.UpdateCartItem(svc.Cart))    // PUT /user/cart/:id
			cartGroup.DELETE("/:id", cartControllers.DeleteCartItem(svc.Cart)) // DELETE /user/cart/:id
			cartGroup.DELETE("", cartControllers.ClearCart(svc.Cart))          // DELETE /user/cart
		}

		// ──────────────── Wishlist ────────────────
		wishGroup := userGroup.Group("/wishlist")
		{
			wishGroup.GET("", wishlistControllers.GetWishlist(svc.Wishlist))               // GET /user/wishlist
			wishGroup.POST("", wishlistControllers.AddWishlistItem(svc.Wishlist))          // POST /user/wishlist
			wishGroup.DELETE("/:id", wishlistControllers.DeleteWishlistItem(svc.Wishlist)) // DELETE /user/wishlist/:id
			wishGroup.DELETE("", wishlistControllers.ClearWishlist(svc.Wishlist))          // DELETE /user/wishlist
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.Checkout(svc.Orders))      // POST /user/checkout
		userGroup.GET("/orders", orderControllers.GetOrders(svc.Orders))        // GET /user/orders
		userGroup.GET("/orders/:id", orderControllers.GetOrderByID(svc.Orders)) // GET /user/orders/:id
	}
}
