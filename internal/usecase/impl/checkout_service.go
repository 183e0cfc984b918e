package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	carts     repository.CartRepository
	sessions  repository.SessionRepository
	discounts repository.DiscountRepository
	qr        service.QRCodeService
	pricing   *config.PricingConfig
	checkout  *config.CheckoutConfig
	logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	carts repository.CartRepository,
	sessions repository.SessionRepository,
	discounts repository.DiscountRepository,
	qr service.QRCodeService,
	pricing *config.PricingConfig,
	checkout *config.CheckoutConfig,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		carts:     carts,
		sessions:  sessions,
		discounts: discounts,
		qr:        qr,
		pricing:   pricing,
		checkout:  checkout,
		logger:    logger,
	}
}

// Message renders the plain-text order message. The layout is fixed:
// greeting, numbered lines with unit prices, subtotal, the optional
// discount line, shipping and total. Line prices print unformatted;
// aggregate amounts always carry two decimals.
func (srv *checkoutService) Message(ctx context.Context) (string, error) {
	cart, err := srv.loadCart(ctx)
	if err != nil {
		return "", err
	}
	if len(cart.Lines) == 0 {
		return "", domainerrors.ErrCartEmpty
	}

	discount, err := srv.discounts.Load(ctx)
	if err != nil && !errors.Is(err, repository.ErrDiscountNotFound) {
		return "", errors.Wrap(err, "failed to load discount")
	}
	if errors.Is(err, repository.ErrDiscountNotFound) {
		discount = nil
	}

	currency := srv.checkout.CurrencyPrefix

	var msg strings.Builder
	msg.WriteString("Hola " + srv.checkout.StoreName + ", soy " + srv.customerLabel(ctx) +
		" y quiero realizar este pedido:\n\n")

	for i := range cart.Lines {
		line := &cart.Lines[i]
		msg.WriteString(strconv.Itoa(i+1) + ". " + line.Name +
			" x" + strconv.Itoa(line.Quantity) +
			" - " + currency + " " + line.UnitPrice.String() + "\n")
	}

	subtotal := cart.Subtotal()
	msg.WriteString("\nSubtotal: " + currency + " " + subtotal.StringFixed(2) + "\n")

	if !discount.IsZero() {
		amount := subtotal.Mul(discount.Fraction)
		msg.WriteString("Descuento (" + percentOf(discount.Fraction) + "%): -" +
			currency + " " + amount.StringFixed(2) + "\n")
		subtotal = subtotal.Sub(amount)
	}

	// Shipping is decided on the discounted subtotal here: a discount can
	// push an order below the free shipping threshold.
	threshold := decimal.NewFromFloat(srv.pricing.FreeShippingThreshold)
	shipping := decimal.Zero
	if subtotal.LessThan(threshold) {
		shipping = decimal.NewFromFloat(srv.pricing.ShippingFee)
		msg.WriteString("Envío: " + currency + " " + shipping.StringFixed(2) + "\n")
	} else {
		msg.WriteString("Envío: Gratis\n")
	}

	msg.WriteString("\nTotal: " + currency + " " + subtotal.Add(shipping).StringFixed(2))

	return msg.String(), nil
}

// Link renders the wa.me URL carrying the fully encoded message.
func (srv *checkoutService) Link(ctx context.Context) (string, error) {
	message, err := srv.Message(ctx)
	if err != nil {
		return "", err
	}

	return "https://wa.me/" + srv.checkout.WhatsAppPhone + "?text=" + encodeMessage(message), nil
}

// QRCodePNG renders the wa.me URL as a PNG QR code.
func (srv *checkoutService) QRCodePNG(ctx context.Context) ([]byte, error) {
	link, err := srv.Link(ctx)
	if err != nil {
		return nil, err
	}

	png, err := srv.qr.GeneratePNG(link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render checkout QR code")
	}

	srv.logger.Debug("Rendered checkout QR code", slog.Int("bytes", len(png)))

	return png, nil
}

// customerLabel picks the identifier for the greeting: email first,
// then name, then the generic fallback.
func (srv *checkoutService) customerLabel(ctx context.Context) string {
	session, err := srv.sessions.Load(ctx)
	if err == nil {
		if session.User.Email != "" {
			return session.User.Email
		}
		if session.User.Name != "" {
			return session.User.Name
		}
	}

	legacy, err := srv.sessions.LoadLegacyUser(ctx)
	if err == nil && legacy.Email != "" {
		return legacy.Email
	}

	return "Usuario"
}

// loadCart resolves the active cart the same way the cart store does.
func (srv *checkoutService) loadCart(ctx context.Context) (*entity.Cart, error) {
	key := repository.KeyCartGuest

	session, err := srv.sessions.Load(ctx)
	if err == nil && session.User.Email != "" {
		key = repository.CartKeyForEmail(session.User.Email)
	} else if legacy, err := srv.sessions.LoadLegacyUser(ctx); err == nil && legacy.Email != "" {
		key = repository.CartKeyForEmail(legacy.Email)
	}

	cart, err := srv.carts.Load(ctx, key)
	if errors.Is(err, repository.ErrCartNotFound) {
		return &entity.Cart{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// encodeMessage escapes the message for the wa.me query string,
// rendering spaces as %20 and newlines as %0A.
func encodeMessage(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
