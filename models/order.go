package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type PaymentMethod string

const (
	// Order statuses
	OrderStatusProcessing OrderStatus = "Processing" // Payment captured, order being prepared
	OrderStatusPending    OrderStatus = "Pending"    // Awaiting confirmation
	OrderStatusCompleted  OrderStatus = "Completed"  // Delivered to customer
	OrderStatusCancelled  OrderStatus = "Cancelled"  // Cancelled before completion

	// Payment methods
	PaymentMethodCard   PaymentMethod = "card"   // Credit/debit card
	PaymentMethodWallet PaymentMethod = "wallet" // Digital wallet
	PaymentMethodCOD    PaymentMethod = "cod"    // Cash on delivery
)

// ShippingInfo is the delivery address captured at checkout.
type ShippingInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
	Phone    string `json:"phone,omitempty"`
}

// Order is an immutable snapshot of a completed checkout. Total is fixed at
// placement time and never recomputed from Items.
type Order struct {
	ID            string        `json:"id"`
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"`
	ShippingInfo  ShippingInfo  `json:"shippingInfo"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Date          time.Time     `json:"date"`
	Status        OrderStatus   `json:"status"`
}

// MapOrderStatus maps a request string to an OrderStatus.
func MapOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case "processing":
		return OrderStatusProcessing, nil
	case "pending":
		return OrderStatusPending, nil
	case "completed":
		return OrderStatusCompleted, nil
	case "cancelled":
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// MapPaymentMethod maps a request string to a PaymentMethod.
func MapPaymentMethod(method string) (PaymentMethod, error) {
	switch strings.ToLower(method) {
	case string(PaymentMethodCard):
		return PaymentMethodCard, nil
	case string(PaymentMethodWallet):
		return PaymentMethodWallet, nil
	case string(PaymentMethodCOD):
		return PaymentMethodCOD, nil
	default:
		return "", errors.New("invalid payment method")
	}
}
