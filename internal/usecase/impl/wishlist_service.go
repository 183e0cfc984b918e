package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlists repository.WishlistRepository
	cart      usecase.CartUsecase
	notifier  service.Notifier
	logger    *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(
	wishlists repository.WishlistRepository,
	cart usecase.CartUsecase,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistService{
		wishlists: wishlists,
		cart:      cart,
		notifier:  notifier,
		logger:    logger,
	}
}

// List returns the saved products.
func (srv *wishlistService) List(ctx context.Context) (*usecase.WishlistView, error) {
	wishlist, err := srv.wishlists.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	return wishlistView(wishlist), nil
}

// Toggle adds the product when absent and removes it when present.
func (srv *wishlistService) Toggle(ctx context.Context, input *usecase.WishlistItemInput) (*usecase.WishlistView, bool, error) {
	wishlist, err := srv.wishlists.Load(ctx)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to load wishlist")
	}

	added := false
	if idx := wishlist.FindItem(input.Name); idx >= 0 {
		wishlist.Items = append(wishlist.Items[:idx], wishlist.Items[idx+1:]...)
		srv.notifier.Notify(ctx, service.NotifyInfo, "Eliminado de favoritos")
	} else {
		wishlist.Items = append(wishlist.Items, entity.WishlistItem{
			Name:     input.Name,
			Price:    input.Price,
			ImageRef: input.ImageRef,
		})
		added = true
		srv.notifier.Notify(ctx, service.NotifySuccess, "Agregado a favoritos")
	}

	if err := srv.wishlists.Save(ctx, wishlist); err != nil {
		return nil, false, errors.Wrap(err, "failed to save wishlist")
	}

	return wishlistView(wishlist), added, nil
}

// Remove deletes the named product.
func (srv *wishlistService) Remove(ctx context.Context, name string) (*usecase.WishlistView, error) {
	wishlist, err := srv.wishlists.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	idx := wishlist.FindItem(name)
	if idx < 0 {
		return nil, domainerrors.ErrWishlistItemNotFound
	}
	wishlist.Items = append(wishlist.Items[:idx], wishlist.Items[idx+1:]...)

	if err := srv.wishlists.Save(ctx, wishlist); err != nil {
		return nil, errors.Wrap(err, "failed to save wishlist")
	}

	return wishlistView(wishlist), nil
}

// MoveToCart adds the named product to the cart, then removes it from
// the wishlist.
func (srv *wishlistService) MoveToCart(ctx context.Context, name string) (*usecase.WishlistView, error) {
	wishlist, err := srv.wishlists.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	idx := wishlist.FindItem(name)
	if idx < 0 {
		return nil, domainerrors.ErrWishlistItemNotFound
	}
	item := wishlist.Items[idx]

	if _, err := srv.cart.AddItem(ctx, &usecase.AddItemInput{
		Name:     item.Name,
		Price:    item.Price,
		ImageRef: item.ImageRef,
		Quantity: 1,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to move wishlist item to cart")
	}

	wishlist.Items = append(wishlist.Items[:idx], wishlist.Items[idx+1:]...)
	if err := srv.wishlists.Save(ctx, wishlist); err != nil {
		return nil, errors.Wrap(err, "failed to save wishlist")
	}

	srv.logger.Debug("Moved wishlist item to cart", slog.String("name", name))

	return wishlistView(wishlist), nil
}

func wishlistView(wishlist *entity.Wishlist) *usecase.WishlistView {
	view := &usecase.WishlistView{Items: make([]usecase.WishlistItemView, 0, len(wishlist.Items))}
	for i := range wishlist.Items {
		item := &wishlist.Items[i]
		view.Items = append(view.Items, usecase.WishlistItemView{
			Name:     item.Name,
			Price:    item.Price.String(),
			ImageRef: item.ImageRef,
		})
	}

	return view
}
