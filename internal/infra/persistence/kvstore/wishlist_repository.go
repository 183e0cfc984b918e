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

// WishlistRepository stores the saved-products list as a JSON array
// under "wishlist". Absent or malformed data loads as an empty list.
type WishlistRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewWishlistRepository creates a WishlistRepository over the given store.
func NewWishlistRepository(store repository.KVStore, logger *slog.Logger) repository.WishlistRepository {
	return &WishlistRepository{store: store, logger: logger}
}

// Load retrieves the wishlist, never failing on absent or corrupt data.
func (r *WishlistRepository) Load(ctx context.Context) (*entity.Wishlist, error) {
	empty := &entity.Wishlist{Items: []entity.WishlistItem{}}

	raw, err := r.store.Get(ctx, repository.KeyWishlist)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return empty, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	var items []model.WishlistItemModel
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		r.logger.Warn("Discarding malformed wishlist", slog.Any("error", err))

		return empty, nil
	}

	wishlist := &entity.Wishlist{Items: make([]entity.WishlistItem, 0, len(items))}
	for _, item := range items {
		wishlist.Items = append(wishlist.Items, entity.WishlistItem{
			Name:     item.Name,
			Price:    item.Price,
			ImageRef: item.Img,
		})
	}

	return wishlist, nil
}

// Save persists the wishlist, overwriting the previous snapshot.
func (r *WishlistRepository) Save(ctx context.Context, wishlist *entity.Wishlist) error {
	items := make([]model.WishlistItemModel, 0, len(wishlist.Items))
	for _, item := range wishlist.Items {
		items = append(items, model.WishlistItemModel{
			Name:  item.Name,
			Price: item.Price,
			Img:   item.ImageRef,
		})
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "failed to marshal wishlist")
	}
	if err := r.store.Set(ctx, repository.KeyWishlist, string(raw)); err != nil {
		return errors.Wrap(err, "failed to save wishlist")
	}

	return nil
}
