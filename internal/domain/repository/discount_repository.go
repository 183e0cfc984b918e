package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrDiscountNotFound is returned when no discount fraction is persisted.
var ErrDiscountNotFound = errors.New("discount not found")

// DiscountRepository persists the single active discount fraction,
// independent of both the cart and the session.
type DiscountRepository interface {
	// Load retrieves the active discount, or ErrDiscountNotFound.
	Load(ctx context.Context) (*entity.Discount, error)

	// Save persists the discount, replacing any previous one.
	Save(ctx context.Context, discount *entity.Discount) error

	// Clear removes the persisted discount. Called on logout.
	Clear(ctx context.Context) error
}
