package wishlist

import (
	"context"
	"errors"

	"github.com/glowmora/storefront-api/models"
	"github.com/glowmora/storefront-api/store"
)

// ErrInvalidItem is returned for an empty id or a negative price.
var ErrInvalidItem = errors.New("wishlist: invalid item")

// Service is the wishlist aggregate: same shape as the cart minus quantity.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) Items(ctx context.Context) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := s.store.Get(ctx, store.KeyWishlist, &items); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}

// Add is idempotent: an id already on the wishlist is left untouched.
func (s *Service) Add(ctx context.Context, item models.WishlistItem) error {
	if item.ID == "" || item.Price < 0 {
		return ErrInvalidItem
	}
	var items []models.WishlistItem
	return s.store.Update(ctx, store.KeyWishlist, &items, func() error {
		for _, it := range items {
			if it.ID == item.ID {
				return nil
			}
		}
		items = append(items, item)
		return nil
	})
}

func (s *Service) Remove(ctx context.Context, id string) error {
	var items []models.WishlistItem
	return s.store.Update(ctx, store.KeyWishlist, &items, func() error {
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

func (s *Service) Clear(ctx context.Context) error {
	return s.store.Set(ctx, store.KeyWishlist, []models.WishlistItem{})
}

// Contains reports membership by id equality.
func (s *Service) Contains(ctx context.Context, id string) (bool, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		if it.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
