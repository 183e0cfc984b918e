package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) newPreferenceService() *preferenceService {
	return NewPreferenceService(f.prefs, f.notifier, newTestLogger()).(*preferenceService)
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestPreferenceService_GetDefaults(t *testing.T) {
	f := newFixture()
	srv := f.newPreferenceService()

	view, err := srv.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, view.Newsletter)
	assert.True(t, view.OrderUpdates)
	assert.True(t, view.NewArrivals)
}

func TestPreferenceService_PartialUpdate(t *testing.T) {
	f := newFixture()
	srv := f.newPreferenceService()
	ctx := context.Background()

	view, err := srv.Update(ctx, &usecase.UpdatePreferencesInput{
		Name:       strPtr("Ana"),
		Newsletter: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", view.Name)
	assert.False(t, view.Newsletter)
	assert.True(t, view.OrderUpdates, "untouched flags keep their value")

	view, err = srv.Get(ctx)
	require.NoError(t, err)
	assert.False(t, view.Newsletter, "the update must persist")
}

func TestPreferenceService_UpdateRejectsEmptyName(t *testing.T) {
	f := newFixture()
	srv := f.newPreferenceService()
	ctx := context.Background()

	_, err := srv.Update(ctx, &usecase.UpdatePreferencesInput{Name: strPtr("Ana")})
	require.NoError(t, err)

	_, err = srv.Update(ctx, &usecase.UpdatePreferencesInput{Name: strPtr("")})
	assert.ErrorIs(t, err, domainerrors.ErrNameRequired)
	_, err = srv.Update(ctx, &usecase.UpdatePreferencesInput{Name: strPtr("   ")})
	assert.ErrorIs(t, err, domainerrors.ErrNameRequired)

	view, err := srv.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", view.Name, "a rejected update must not touch the stored name")
}

func TestPreferenceService_UpdateRejectsBadEmail(t *testing.T) {
	f := newFixture()
	srv := f.newPreferenceService()

	_, err := srv.Update(context.Background(), &usecase.UpdatePreferencesInput{Email: strPtr("nope")})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
}

func TestPreferenceService_SubscribeNewsletter(t *testing.T) {
	f := newFixture()
	srv := f.newPreferenceService()
	ctx := context.Background()

	err := srv.SubscribeNewsletter(ctx, &usecase.NewsletterInput{Email: "nope"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)

	_, err = srv.Update(ctx, &usecase.UpdatePreferencesInput{Newsletter: boolPtr(false)})
	require.NoError(t, err)

	require.NoError(t, srv.SubscribeNewsletter(ctx, &usecase.NewsletterInput{Email: "ana@example.com"}))

	view, err := srv.Get(ctx)
	require.NoError(t, err)
	assert.True(t, view.Newsletter, "subscribing re-enables the flag")
	assert.Equal(t, "ana@example.com", view.Email)
	assert.True(t, f.notifier.contains("¡Gracias por suscribirte!"))
}
