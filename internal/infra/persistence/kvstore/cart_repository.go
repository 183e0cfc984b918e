package kvstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"
)

// CartRepository stores one cart per storage key as a JSON array of
// lines.
type CartRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewCartRepository creates a CartRepository over the given store.
func NewCartRepository(store repository.KVStore, logger *slog.Logger) repository.CartRepository {
	return &CartRepository{store: store, logger: logger}
}

// Load retrieves the cart stored under key. A malformed snapshot is
// logged and reported as absent.
func (r *CartRepository) Load(ctx context.Context, key string) (*entity.Cart, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, repository.ErrCartNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load cart %s", key)
	}

	var lines []model.CartLineModel
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		r.logger.Warn("Discarding malformed cart snapshot",
			slog.String("key", key), slog.Any("error", err))

		return nil, repository.ErrCartNotFound
	}

	cart := &entity.Cart{Lines: make([]entity.CartLine, 0, len(lines))}
	for _, line := range lines {
		cart.Lines = append(cart.Lines, entity.CartLine{
			Name:      line.Name,
			UnitPrice: line.Price,
			ImageRef:  line.Img,
			Quantity:  line.Qty,
		})
	}

	return cart, nil
}

// Save persists the cart under key, overwriting the previous snapshot.
func (r *CartRepository) Save(ctx context.Context, key string, cart *entity.Cart) error {
	lines := make([]model.CartLineModel, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, model.CartLineModel{
			Name:  line.Name,
			Price: line.UnitPrice,
			Img:   line.ImageRef,
			Qty:   line.Quantity,
		})
	}

	raw, err := json.Marshal(lines)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cart")
	}
	if err := r.store.Set(ctx, key, string(raw)); err != nil {
		return errors.Wrapf(err, "failed to save cart %s", key)
	}

	return nil
}

// Delete removes the cart stored under key.
func (r *CartRepository) Delete(ctx context.Context, key string) error {
	if err := r.store.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete cart %s", key)
	}

	return nil
}
