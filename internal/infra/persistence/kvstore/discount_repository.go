package kvstore

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
)

// DiscountRepository stores the active discount fraction as a plain
// decimal string under "currentDiscount". Only the fraction survives a
// reload; the code that produced it is display state, not persisted.
type DiscountRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewDiscountRepository creates a DiscountRepository over the given store.
func NewDiscountRepository(store repository.KVStore, logger *slog.Logger) repository.DiscountRepository {
	return &DiscountRepository{store: store, logger: logger}
}

// Load retrieves the active discount. A zero or unparsable fraction is
// reported as absent.
func (r *DiscountRepository) Load(ctx context.Context) (*entity.Discount, error) {
	raw, err := r.store.Get(ctx, repository.KeyDiscount)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, repository.ErrDiscountNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load discount")
	}

	fraction, err := decimal.NewFromString(raw)
	if err != nil {
		r.logger.Warn("Discarding malformed discount fraction",
			slog.String("value", raw), slog.Any("error", err))

		return nil, repository.ErrDiscountNotFound
	}
	if fraction.IsZero() {
		return nil, repository.ErrDiscountNotFound
	}

	return &entity.Discount{Fraction: fraction}, nil
}

// Save persists the discount fraction.
func (r *DiscountRepository) Save(ctx context.Context, discount *entity.Discount) error {
	if err := r.store.Set(ctx, repository.KeyDiscount, discount.Fraction.String()); err != nil {
		return errors.Wrap(err, "failed to save discount")
	}

	return nil
}

// Clear removes the persisted discount.
func (r *DiscountRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, repository.KeyDiscount); err != nil {
		return errors.Wrap(err, "failed to clear discount")
	}

	return nil
}
