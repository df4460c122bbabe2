package orderControllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glowmora/storefront-api/models"
	"github.com/glowmora/storefront-api/orders"
	"github.com/glowmora/storefront-api/payment"
)

// checkoutTimeout bounds the payment call so an unresponsive provider cannot
// hold the request open forever.
const checkoutTimeout = 30 * time.Second

type CheckoutRequest struct {
	ShippingInfo  models.ShippingInfo `json:"shippingInfo" binding:"required"`
	PaymentMethod string              `json:"paymentMethod" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /user/checkout
func Checkout(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		method, err := models.MapPaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), checkoutTimeout)
		defer cancel()

		order, err := svc.Place(ctx, req.ShippingInfo, method)
		if err != nil {
			switch {
			case errors.Is(err, orders.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.Is(err, payment.ErrDeclined):
				c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment was declined"})
			case errors.Is(err, payment.ErrUnavailable):
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment provider unavailable, try again later"})
			case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
				c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Payment timed out, your cart was not charged"})
			default:
				// The cart is left untouched when the order write fails.
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order, please retry"})
			}
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetOrders(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		if all == nil {
			all = []models.Order{}
		}
		c.JSON(http.StatusOK, all)
	}
}

// GET /user/orders/:id
func GetOrderByID(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, orders.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PATCH /admin/orders/:id/status
func UpdateOrderStatus(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := models.MapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), status)
		if err != nil {
			if errors.Is(err, orders.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/analytics
func GetAnalytics(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Summarize(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
