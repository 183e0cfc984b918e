package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCartNotFound is returned when no cart is persisted under a key.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists per-identity carts. The storage key encodes
// the owning identity (cart_<email> or cart_guest); deriving it is the
// cart store's concern, not the repository's.
type CartRepository interface {
	// Load retrieves the cart stored under key, or ErrCartNotFound.
	// A malformed persisted cart is treated as absent.
	Load(ctx context.Context, key string) (*entity.Cart, error)

	// Save persists the cart under key, overwriting the previous snapshot.
	Save(ctx context.Context, key string, cart *entity.Cart) error

	// Delete removes the cart stored under key.
	Delete(ctx context.Context, key string) error
}
