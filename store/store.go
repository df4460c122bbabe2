package store

import (
	"context"
	"errors"
)

// Keys for the logical collections. Each key holds one JSON snapshot that
// is read fully and rewritten fully on every mutation.
const (
	KeyProducts             = "products"
	KeyCart                 = "cart"
	KeyWishlist             = "wishlist"
	KeyOrders               = "orders"
	KeyStoreSettings        = "storeSettings"
	KeyNotificationSettings = "notificationSettings"
	KeyMaintenanceMode      = "maintenanceMode"
)

var (
	// ErrNotFound means the key has never been written.
	ErrNotFound = errors.New("store: key not found")
	// ErrCorrupt means the stored value is not valid JSON for the target type.
	ErrCorrupt = errors.New("store: corrupt stored value")
	// ErrConflict means a concurrent writer changed the key during Update.
	ErrConflict = errors.New("store: concurrent modification")
	// ErrPersistence means the backing store rejected or lost a write.
	ErrPersistence = errors.New("store: write failed")
)

// Store is the persistence port for snapshot collections. Update serializes
// read-modify-write per key: it loads the current snapshot into v (zero value
// if the key is absent), runs apply to mutate v, and writes v back only if
// the key was not changed in between.
type Store interface {
	Get(ctx context.Context, key string, v any) error
	Set(ctx context.Context, key string, v any) error
	Update(ctx context.Context, key string, v any, apply func() error) error
	Delete(ctx context.Context, key string) error
}
