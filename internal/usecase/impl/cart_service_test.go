package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItemMergesByName(t *testing.T) {
	f := newFixture()
	srv := f.newCartService()
	ctx := context.Background()

	polo := &usecase.AddItemInput{Name: "Polo", Price: decimal.NewFromFloat(59.9), Quantity: 1}

	view, err := srv.AddItem(ctx, polo)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)

	view, err = srv.AddItem(ctx, polo)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1, "same product must merge, not duplicate")
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, 2, view.TotalQuantity)
	assert.Equal(t, "119.80", view.Lines[0].LineTotal)
}

func TestCartService_DefaultQuantityIsOne(t *testing.T) {
	f := newFixture()
	srv := f.newCartService()

	view, err := srv.AddItem(context.Background(), &usecase.AddItemInput{
		Name: "Gorra", Price: decimal.NewFromFloat(35.5),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Lines[0].Quantity)
}

func TestCartService_ChangeQuantity(t *testing.T) {
	f := newFixture()
	srv := f.newCartService()
	ctx := context.Background()

	_, err := srv.AddItem(ctx, &usecase.AddItemInput{Name: "Polo", Price: decimal.NewFromInt(50), Quantity: 2})
	require.NoError(t, err)

	view, err := srv.ChangeQuantity(ctx, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Lines[0].Quantity)

	// Dropping to zero removes the line entirely.
	view, err = srv.ChangeQuantity(ctx, 0, -3)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestCartService_OutOfRangeIndexIsNoOp(t *testing.T) {
	f := newFixture()
	srv := f.newCartService()
	ctx := context.Background()

	_, err := srv.AddItem(ctx, &usecase.AddItemInput{Name: "Polo", Price: decimal.NewFromInt(50)})
	require.NoError(t, err)

	view, err := srv.ChangeQuantity(ctx, 5, 1)
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)

	view, err = srv.RemoveItem(ctx, -1)
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	f := newFixture()
	srv := f.newCartService()
	ctx := context.Background()

	_, err := srv.AddItem(ctx, &usecase.AddItemInput{Name: "Polo", Price: decimal.NewFromInt(50)})
	require.NoError(t, err)
	_, err = srv.AddItem(ctx, &usecase.AddItemInput{Name: "Gorra", Price: decimal.NewFromInt(30)})
	require.NoError(t, err)

	view, err := srv.RemoveItem(ctx, 0)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Gorra", view.Lines[0].Name)

	require.NoError(t, srv.Clear(ctx))

	view, err = srv.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)

	// Clearing persists an empty snapshot rather than deleting the key.
	raw, err := f.store.Get(ctx, repository.KeyCartGuest)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestCartService_CartFollowsIdentity(t *testing.T) {
	f := newFixture()
	cart := f.newCartService()
	session := f.newSessionService()
	ctx := context.Background()

	_, err := cart.AddItem(ctx, &usecase.AddItemInput{Name: "Polo", Price: decimal.NewFromInt(50)})
	require.NoError(t, err)

	_, err = session.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	view, err := cart.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, view.Lines, "logging in switches to the identity's own cart")

	_, err = cart.AddItem(ctx, &usecase.AddItemInput{Name: "Casaca", Price: decimal.NewFromInt(120)})
	require.NoError(t, err)

	require.NoError(t, session.Logout(ctx))

	view, err = cart.Get(ctx)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Polo", view.Lines[0].Name, "the guest cart survives an identity's login")
}

func TestCartService_SummaryWithoutDiscount(t *testing.T) {
	f := newFixture()
	srv := f.newCartService()
	ctx := context.Background()

	_, err := srv.AddItem(ctx, &usecase.AddItemInput{Name: "Polo", Price: decimal.NewFromInt(50), Quantity: 2})
	require.NoError(t, err)

	summary, err := srv.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "100.00", summary.Subtotal)
	assert.Equal(t, "0.00", summary.DiscountAmount)
	assert.Equal(t, "15.00", summary.Shipping)
	assert.False(t, summary.FreeShipping)
	assert.Equal(t, "115.00", summary.Total)
}

func TestCartService_SummaryFreeShipping(t *testing.T) {
	f := newFixture()
	srv := f.newCartService()
	ctx := context.Background()

	_, err := srv.AddItem(ctx, &usecase.AddItemInput{Name: "Casaca", Price: decimal.NewFromInt(149)})
	require.NoError(t, err)

	summary, err := srv.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, summary.FreeShipping, "the threshold itself qualifies")
	assert.Equal(t, "0.00", summary.Shipping)
	assert.Equal(t, "149.00", summary.Total)
}

func TestCartService_SummaryWithDiscount(t *testing.T) {
	f := newFixture()
	cart := f.newCartService()
	ctx := context.Background()

	_, err := cart.AddItem(ctx, &usecase.AddItemInput{Name: "Casaca", Price: decimal.NewFromInt(200)})
	require.NoError(t, err)
	_, err = f.newDiscountService().Apply(ctx, &usecase.ApplyDiscountInput{Code: "SAMMA10"})
	require.NoError(t, err)

	summary, err := cart.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "200.00", summary.Subtotal)
	assert.Equal(t, "SAMMA10", summary.DiscountCode)
	assert.Equal(t, "10", summary.DiscountPercent)
	assert.Equal(t, "20.00", summary.DiscountAmount)
	assert.True(t, summary.FreeShipping, "shipping is decided on the raw subtotal here")
	assert.Equal(t, "180.00", summary.Total)
}
