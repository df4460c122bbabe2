package wishlistControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowmora/storefront-api/models"
	"github.com/glowmora/storefront-api/wishlist"
)

type AddItemInput struct {
	ID    string  `json:"id" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// GET /user/wishlist
func GetWishlist(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Items(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		if items == nil {
			items = []models.WishlistItem{}
		}
		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"count": len(items),
		})
	}
}

// POST /user/wishlist
func AddWishlistItem(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := svc.Add(c.Request.Context(), models.WishlistItem{
			ID:    input.ID,
			Name:  input.Name,
			Price: input.Price,
			Image: input.Image,
		})
		if err != nil {
			if errors.Is(err, wishlist.ErrInvalidItem) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to wishlist"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Item added to wishlist"})
	}
}

// DELETE /user/wishlist/:id
func DeleteWishlistItem(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Remove(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist item deleted"})
	}
}

// DELETE /user/wishlist
func ClearWishlist(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist cleared"})
	}
}
