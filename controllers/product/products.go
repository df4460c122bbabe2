package productControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/glowmora/storefront-api/models"
	"github.com/glowmora/storefront-api/store"
)

// GET /products
func GetProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := s.Get(c.Request.Context(), store.KeyProducts, &products); err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
				return
			}
		}
		if products == nil {
			products = []models.Product{}
		}

		// Optional filters, matching the storefront browse page.
		category := c.Query("category")
		search := c.Query("search")
		if category != "" || search != "" {
			filtered := products[:0]
			for _, p := range products {
				if category != "" && p.Category != category {
					continue
				}
				if search != "" && !matches(p, search) {
					continue
				}
				filtered = append(filtered, p)
			}
			products = filtered
		}

		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var products []models.Product
		if err := s.Get(c.Request.Context(), store.KeyProducts, &products); err != nil && !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		for _, p := range products {
			if p.ID == id {
				c.JSON(http.StatusOK, p)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	}
}

// PUT /admin/products
//
// The admin editor works on the whole catalog and saves it as one snapshot.
func ReplaceProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := c.ShouldBindJSON(&products); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		for _, p := range products {
			if p.ID == "" || p.Name == "" || p.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Each product needs an id, a name and a non-negative price"})
				return
			}
		}

		if err := s.Set(c.Request.Context(), store.KeyProducts, products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Products saved", "count": len(products)})
	}
}

func matches(p models.Product, search string) bool {
	return containsFold(p.Name, search) || containsFold(p.Description, search)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
