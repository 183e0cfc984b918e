package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	carts     repository.CartRepository
	sessions  repository.SessionRepository
	discounts repository.DiscountRepository
	notifier  service.Notifier
	pricing   *config.PricingConfig
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	carts repository.CartRepository,
	sessions repository.SessionRepository,
	discounts repository.DiscountRepository,
	notifier service.Notifier,
	pricing *config.PricingConfig,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		carts:     carts,
		sessions:  sessions,
		discounts: discounts,
		notifier:  notifier,
		pricing:   pricing,
		logger:    logger,
	}
}

// Get returns the active cart, empty when nothing is persisted.
func (srv *cartService) Get(ctx context.Context) (*usecase.CartView, error) {
	_, cart, err := srv.loadActiveCart(ctx)
	if err != nil {
		return nil, err
	}

	return cartView(cart), nil
}

// AddItem merges by product name and persists the cart.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddItemInput) (*usecase.CartView, error) {
	key, cart, err := srv.loadActiveCart(ctx)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	if idx := cart.FindLine(input.Name); idx >= 0 {
		cart.Lines[idx].Quantity += quantity
	} else {
		cart.Lines = append(cart.Lines, entity.CartLine{
			Name:      input.Name,
			UnitPrice: input.Price,
			ImageRef:  input.ImageRef,
			Quantity:  quantity,
		})
	}

	if err := srv.carts.Save(ctx, key, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.logger.Debug("Added cart item",
		slog.String("key", key), slog.String("name", input.Name), slog.Int("qty", quantity))
	srv.notifier.Notify(ctx, service.NotifySuccess, "Producto agregado al carrito")

	return cartView(cart), nil
}

// ChangeQuantity adjusts the line at index by delta. A quantity at or
// below zero removes the line; an out-of-range index changes nothing.
func (srv *cartService) ChangeQuantity(ctx context.Context, index, delta int) (*usecase.CartView, error) {
	key, cart, err := srv.loadActiveCart(ctx)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(cart.Lines) {
		return cartView(cart), nil
	}

	cart.Lines[index].Quantity += delta
	if cart.Lines[index].Quantity <= 0 {
		cart.Lines = append(cart.Lines[:index], cart.Lines[index+1:]...)
	}

	if err := srv.carts.Save(ctx, key, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cartView(cart), nil
}

// RemoveItem deletes the line at index; an out-of-range index changes
// nothing.
func (srv *cartService) RemoveItem(ctx context.Context, index int) (*usecase.CartView, error) {
	key, cart, err := srv.loadActiveCart(ctx)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(cart.Lines) {
		return cartView(cart), nil
	}

	cart.Lines = append(cart.Lines[:index], cart.Lines[index+1:]...)

	if err := srv.carts.Save(ctx, key, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cartView(cart), nil
}

// Clear empties the active cart, keeping the key present as an empty
// snapshot.
func (srv *cartService) Clear(ctx context.Context) error {
	key, _, err := srv.loadActiveCart(ctx)
	if err != nil {
		return err
	}

	if err := srv.carts.Save(ctx, key, &entity.Cart{Lines: []entity.CartLine{}}); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	srv.logger.Debug("Cleared cart", slog.String("key", key))

	return nil
}

// Summary computes the order totals. Shipping is decided on the raw
// subtotal; the discount reduces the total but never the shipping
// decision.
func (srv *cartService) Summary(ctx context.Context) (*usecase.CartSummary, error) {
	_, cart, err := srv.loadActiveCart(ctx)
	if err != nil {
		return nil, err
	}

	subtotal := cart.Subtotal()
	shipping, free := srv.shippingFor(subtotal)

	summary := &usecase.CartSummary{
		Subtotal:       subtotal.StringFixed(2),
		DiscountAmount: decimal.Zero.StringFixed(2),
		Shipping:       shipping.StringFixed(2),
		FreeShipping:   free,
	}

	total := subtotal
	discount, err := srv.discounts.Load(ctx)
	if err != nil && !errors.Is(err, repository.ErrDiscountNotFound) {
		return nil, errors.Wrap(err, "failed to load discount")
	}
	if err == nil && !discount.IsZero() {
		amount := subtotal.Mul(discount.Fraction)
		summary.DiscountCode = discount.Code
		summary.DiscountPercent = discount.Fraction.Mul(decimal.NewFromInt(100)).StringFixed(0)
		summary.DiscountAmount = amount.StringFixed(2)
		total = total.Sub(amount)
	}

	summary.Total = total.Add(shipping).StringFixed(2)

	return summary, nil
}

// loadActiveCart resolves the active cart key and loads its snapshot.
func (srv *cartService) loadActiveCart(ctx context.Context) (string, *entity.Cart, error) {
	key, err := srv.resolveKey(ctx)
	if err != nil {
		return "", nil, err
	}

	cart, err := srv.carts.Load(ctx, key)
	if errors.Is(err, repository.ErrCartNotFound) {
		return key, &entity.Cart{Lines: []entity.CartLine{}}, nil
	}
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to load cart")
	}

	return key, cart, nil
}

// resolveKey picks the cart the current identity owns: the session
// email first, then the legacy user blob, then the shared guest cart.
func (srv *cartService) resolveKey(ctx context.Context) (string, error) {
	session, err := srv.sessions.Load(ctx)
	if err == nil && session.User.Email != "" {
		return repository.CartKeyForEmail(session.User.Email), nil
	}
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return "", errors.Wrap(err, "failed to load session for cart key")
	}

	legacy, err := srv.sessions.LoadLegacyUser(ctx)
	if err == nil && legacy.Email != "" {
		return repository.CartKeyForEmail(legacy.Email), nil
	}
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return "", errors.Wrap(err, "failed to load legacy user for cart key")
	}

	return repository.KeyCartGuest, nil
}

func (srv *cartService) shippingFor(subtotal decimal.Decimal) (decimal.Decimal, bool) {
	threshold := decimal.NewFromFloat(srv.pricing.FreeShippingThreshold)
	if subtotal.GreaterThanOrEqual(threshold) {
		return decimal.Zero, true
	}

	return decimal.NewFromFloat(srv.pricing.ShippingFee), false
}

func cartView(cart *entity.Cart) *usecase.CartView {
	view := &usecase.CartView{
		Lines:         make([]usecase.CartLineView, 0, len(cart.Lines)),
		TotalQuantity: cart.TotalQuantity(),
	}
	for i := range cart.Lines {
		line := &cart.Lines[i]
		view.Lines = append(view.Lines, usecase.CartLineView{
			Index:     i,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.String(),
			ImageRef:  line.ImageRef,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal().StringFixed(2),
		})
	}

	return view
}
