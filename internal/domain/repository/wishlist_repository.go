package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistRepository persists the saved-products list. The wishlist is
// identity-agnostic: one list per storage namespace. An absent or
// malformed value loads as an empty list.
type WishlistRepository interface {
	Load(ctx context.Context) (*entity.Wishlist, error)
	Save(ctx context.Context, wishlist *entity.Wishlist) error
}
