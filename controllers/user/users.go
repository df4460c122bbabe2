package userControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowmora/storefront-api/models"
)

const (
	defaultLimit = 50
	maxLimit     = 100 // silent cap to keep listing queries cheap
)

// GET /admin/users?limit=&offset=
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := defaultLimit
		if limitParam := c.Query("limit"); limitParam != "" {
			parsed, err := strconv.Atoi(limitParam)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Limit must be a positive integer",
					"code":  "INVALID_LIMIT",
				})
				return
			}
			limit = parsed
			if limit > maxLimit {
				limit = maxLimit
			}
		}

		offset := 0
		if offsetParam := c.Query("offset"); offsetParam != "" {
			parsed, err := strconv.Atoi(offsetParam)
			if err != nil || parsed < 0 {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Offset must be a non-negative integer",
					"code":  "INVALID_OFFSET",
				})
				return
			}
			offset = parsed
		}

		var users []models.PublicUser
		if err := db.Model(&models.User{}).
			Select("id", "name", "email", "created_at"). // public fields only
			Order("created_at desc").
			Limit(limit).
			Offset(offset).
			Find(&users).Error; err != nil {
			log.Println("❌ Failed to fetch users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to fetch users",
				"code":  "FETCH_ERROR",
			})
			return
		}
		if users == nil {
			users = []models.PublicUser{}
		}

		c.JSON(http.StatusOK, users)
	}
}

// DELETE /admin/users/:id
//
// Verification rows keyed by the user's email are removed before the user
// row so no orphaned tokens remain; sessions cascade via the foreign key.
// Both deletes run in one transaction.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Valid user ID is required",
				"code":  "INVALID_USER_ID",
			})
			return
		}

		// The lookup runs inside the transaction so a user deleted by a
		// concurrent request still maps to 404, never to an empty 200.
		var user models.User
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&user, "id = ?", id).Error; err != nil {
				return err
			}
			if err := tx.Where("identifier = ?", user.Email).
				Delete(&models.Verification{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.User{}, "id = ?", user.ID).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"error": "User not found",
					"code":  "USER_NOT_FOUND",
				})
				return
			}
			log.Println("❌ Failed to delete user:", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to delete user",
				"code":  "DELETE_ERROR",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "User deleted successfully",
			"user": gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
			},
		})
	}
}
