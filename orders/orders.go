package orders

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/glowmora/storefront-api/cart"
	"github.com/glowmora/storefront-api/models"
	"github.com/glowmora/storefront-api/payment"
	"github.com/glowmora/storefront-api/store"
)

// Flat shipping surcharge below the free-shipping threshold. The threshold
// is inclusive: a $50.00 subtotal ships free.
const (
	FreeShippingThreshold = 50.0
	ShippingFlatRate      = 5.99
)

var (
	// ErrEmptyCart rejects checkout of an empty cart.
	ErrEmptyCart = errors.New("orders: cart is empty")
	// ErrNotFound means no order has the requested id.
	ErrNotFound = errors.New("orders: order not found")
)

// Service owns the append-only order log and the checkout flow.
type Service struct {
	store    store.Store
	cart     *cart.Service
	payments payment.Provider
	sfg      singleflight.Group // collapses concurrent summary reads
}

func NewService(s store.Store, c *cart.Service, p payment.Provider) *Service {
	return &Service{store: s, cart: c, payments: p}
}

// ShippingCost returns the surcharge for the given subtotal.
func ShippingCost(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return ShippingFlatRate
}

// Place runs the checkout: charge the payment, append the order to the log,
// then clear the cart. The order write happens before the cart clear so a
// failed write leaves the cart intact for a retry; a failed clear after a
// successful write is logged and the order still stands.
func (s *Service) Place(ctx context.Context, shipping models.ShippingInfo, method models.PaymentMethod) (*models.Order, error) {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := cart.Total(items)
	total := subtotal + ShippingCost(subtotal)

	if _, err := s.payments.Charge(ctx, total, method); err != nil {
		return nil, err
	}

	order := models.Order{
		ID:            newOrderID(),
		Items:         items,
		Total:         total,
		ShippingInfo:  shipping,
		PaymentMethod: method,
		Date:          time.Now().UTC(),
		Status:        models.OrderStatusProcessing,
	}

	var all []models.Order
	if err := s.store.Update(ctx, store.KeyOrders, &all, func() error {
		all = append(all, order)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := s.cart.Clear(ctx); err != nil {
		log.Printf("⚠️ Order %s placed but cart clear failed: %v", order.ID, err)
	}

	return &order, nil
}

// List returns all orders, newest first.
func (s *Service) List(ctx context.Context) ([]models.Order, error) {
	var all []models.Order
	if err := s.store.Get(ctx, store.KeyOrders, &all); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	// The log is stored oldest-first.
	out := make([]models.Order, len(all))
	for i, o := range all {
		out[len(all)-1-i] = o
	}
	return out, nil
}

// Get returns a single order by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Order, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

// UpdateStatus transitions an order's status (admin action). Everything else
// on the order stays immutable.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	var all []models.Order
	var updated *models.Order
	err := s.store.Update(ctx, store.KeyOrders, &all, func() error {
		for i := range all {
			if all[i].ID == id {
				all[i].Status = status
				updated = &all[i]
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// newOrderID builds a unique time-derived reference, e.g.
// 20250901130500-<uuid4>.
func newOrderID() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
