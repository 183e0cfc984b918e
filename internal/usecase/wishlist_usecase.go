package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// WishlistUsecase defines the interface for saved-product operations.
type WishlistUsecase interface {
	List(ctx context.Context) (*WishlistView, error)

	// Toggle adds the product when absent and removes it when present,
	// matching by name. It reports whether the product ended up saved.
	Toggle(ctx context.Context, input *WishlistItemInput) (*WishlistView, bool, error)

	// Remove deletes the named product. Removing an absent product fails.
	Remove(ctx context.Context, name string) (*WishlistView, error)

	// MoveToCart adds the named product to the cart and removes it from
	// the wishlist.
	MoveToCart(ctx context.Context, name string) (*WishlistView, error)
}

// --- Input DTOs ---

// WishlistItemInput defines the product being toggled.
type WishlistItemInput struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	ImageRef string          `json:"img"`
}

// --- Output DTOs ---

// WishlistItemView is one rendered saved product.
type WishlistItemView struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	ImageRef string `json:"img,omitempty"`
}

// WishlistView is the rendered wishlist state.
type WishlistView struct {
	Items []WishlistItemView `json:"items"`
}
