package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) newCheckoutService() *checkoutService {
	qr := qrcode.NewQRCodeService(&config.QRCodeConfig{Size: 64})

	return NewCheckoutService(
		f.carts, f.sessions, f.discounts, qr,
		f.pricingConfig(), f.checkoutConfig(), newTestLogger(),
	).(*checkoutService)
}

func TestCheckoutService_MessageForGuestCart(t *testing.T) {
	f := newFixture()
	cart := f.newCartService()
	ctx := context.Background()

	_, err := cart.AddItem(ctx, &usecase.AddItemInput{Name: "Polo", Price: decimal.NewFromFloat(59.9), Quantity: 2})
	require.NoError(t, err)
	_, err = cart.AddItem(ctx, &usecase.AddItemInput{Name: "Gorra", Price: decimal.NewFromFloat(35.5)})
	require.NoError(t, err)

	message, err := f.newCheckoutService().Message(ctx)
	require.NoError(t, err)

	expected := "Hola Samma.hub, soy Usuario y quiero realizar este pedido:\n" +
		"\n" +
		"1. Polo x2 - S/ 59.9\n" +
		"2. Gorra x1 - S/ 35.5\n" +
		"\n" +
		"Subtotal: S/ 155.30\n" +
		"Envío: Gratis\n" +
		"\n" +
		"Total: S/ 155.30"
	assert.Equal(t, expected, message)
}

func TestCheckoutService_MessageWithDiscountAndIdentity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.newSessionService().Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	cart := f.newCartService()
	_, err = cart.AddItem(ctx, &usecase.AddItemInput{Name: "Polo", Price: decimal.NewFromFloat(59.9), Quantity: 2})
	require.NoError(t, err)
	_, err = cart.AddItem(ctx, &usecase.AddItemInput{Name: "Gorra", Price: decimal.NewFromFloat(35.5)})
	require.NoError(t, err)

	_, err = f.newDiscountService().Apply(ctx, &usecase.ApplyDiscountInput{Code: "SAMMA10"})
	require.NoError(t, err)

	message, err := f.newCheckoutService().Message(ctx)
	require.NoError(t, err)

	// 155.30 - 15.53 = 139.77, which drops below the free shipping
	// threshold, so the discount reintroduces the shipping fee.
	expected := "Hola Samma.hub, soy ana@example.com y quiero realizar este pedido:\n" +
		"\n" +
		"1. Polo x2 - S/ 59.9\n" +
		"2. Gorra x1 - S/ 35.5\n" +
		"\n" +
		"Subtotal: S/ 155.30\n" +
		"Descuento (10%): -S/ 15.53\n" +
		"Envío: S/ 15.00\n" +
		"\n" +
		"Total: S/ 154.77"
	assert.Equal(t, expected, message)
}

func TestCheckoutService_MessageGuestSessionUsesName(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.newSessionService().LoginAsGuest(ctx)
	require.NoError(t, err)

	cart := f.newCartService()
	_, err = cart.AddItem(ctx, &usecase.AddItemInput{Name: "Polo", Price: decimal.NewFromInt(50)})
	require.NoError(t, err)

	message, err := f.newCheckoutService().Message(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(message, "Hola Samma.hub, soy Invitado"))
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	f := newFixture()

	_, err := f.newCheckoutService().Message(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Link(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.newCartService().AddItem(ctx, &usecase.AddItemInput{Name: "Polo", Price: decimal.NewFromInt(50)})
	require.NoError(t, err)

	link, err := f.newCheckoutService().Link(ctx)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/51958143259?text="))
	assert.Contains(t, link, "%0A", "newlines must be percent-encoded")
	assert.Contains(t, link, "%20", "spaces must be percent-encoded, not plus-encoded")
	assert.NotContains(t, link, "+")
	assert.NotContains(t, link, " ")
}

func TestCheckoutService_QRCodePNG(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.newCartService().AddItem(ctx, &usecase.AddItemInput{Name: "Polo", Price: decimal.NewFromInt(50)})
	require.NoError(t, err)

	png, err := f.newCheckoutService().QRCodePNG(ctx)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte{0x89, 'P', 'N', 'G'}))
}
