package cart

import (
	"context"
	"errors"

	"github.com/glowmora/storefront-api/models"
	"github.com/glowmora/storefront-api/store"
)

var (
	// ErrInvalidItem is returned for an empty id or a negative price.
	ErrInvalidItem = errors.New("cart: invalid item")
	// ErrInvalidQuantity is returned for a negative quantity.
	ErrInvalidQuantity = errors.New("cart: invalid quantity")
	// ErrItemNotFound is returned by UpdateQuantity for an unknown id.
	ErrItemNotFound = errors.New("cart: item not found")
)

// Service is the cart aggregate. Every mutation rewrites the full cart
// snapshot through the store's serialized Update, so concurrent writers
// cannot lose each other's changes.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Items returns the current cart lines. An unwritten cart is empty, not an
// error.
func (s *Service) Items(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.store.Get(ctx, store.KeyCart, &items); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}

// Add appends the item, or increments the existing line's quantity when the
// id is already in the cart. A zero or missing quantity counts as 1.
func (s *Service) Add(ctx context.Context, item models.CartItem) error {
	if item.ID == "" || item.Price < 0 {
		return ErrInvalidItem
	}
	if item.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}

	var items []models.CartItem
	return s.store.Update(ctx, store.KeyCart, &items, func() error {
		for i := range items {
			if items[i].ID == item.ID {
				items[i].Quantity += item.Quantity
				return nil
			}
		}
		items = append(items, item)
		return nil
	})
}

// Remove drops the line with the given id; absent ids are a no-op.
func (s *Service) Remove(ctx context.Context, id string) error {
	var items []models.CartItem
	return s.store.Update(ctx, store.KeyCart, &items, func() error {
		kept := items[:0]
		for _, it := range items {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		items = kept
		return nil
	})
}

// UpdateQuantity sets the line's quantity. Zero removes the line; a negative
// value fails with ErrInvalidQuantity, an unknown id with ErrItemNotFound.
func (s *Service) UpdateQuantity(ctx context.Context, id string, qty int) error {
	if qty < 0 {
		return ErrInvalidQuantity
	}
	if qty == 0 {
		return s.Remove(ctx, id)
	}
	var items []models.CartItem
	return s.store.Update(ctx, store.KeyCart, &items, func() error {
		for i := range items {
			if items[i].ID == id {
				items[i].Quantity = qty
				return nil
			}
		}
		return ErrItemNotFound
	})
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	return s.store.Set(ctx, store.KeyCart, []models.CartItem{})
}

// Total recomputes the cart total from the stored snapshot on every call.
func (s *Service) Total(ctx context.Context) (float64, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return 0, err
	}
	return Total(items), nil
}

// Count is the number of units across all lines.
func (s *Service) Count(ctx context.Context) (int, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	return count, nil
}

// Total sums price x quantity over the given lines.
func Total(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
