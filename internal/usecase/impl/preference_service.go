package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	preferences repository.PreferenceRepository
	notifier    service.Notifier
	logger      *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(
	preferences repository.PreferenceRepository,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.PreferenceUsecase {
	return &preferenceService{
		preferences: preferences,
		notifier:    notifier,
		logger:      logger,
	}
}

// Get returns the stored preferences with absent flags defaulting to
// enabled.
func (srv *preferenceService) Get(ctx context.Context) (*usecase.PreferencesView, error) {
	prefs, err := srv.preferences.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preferences")
	}

	return &usecase.PreferencesView{
		Name:         prefs.Name,
		Email:        prefs.Email,
		Newsletter:   prefs.Newsletter,
		OrderUpdates: prefs.OrderUpdates,
		NewArrivals:  prefs.NewArrivals,
	}, nil
}

// Update overwrites the provided fields; nil fields keep their stored
// value. The display name cannot be blanked, since the checkout
// greeting and the legacy login probe read it.
func (srv *preferenceService) Update(ctx context.Context, input *usecase.UpdatePreferencesInput) (*usecase.PreferencesView, error) {
	prefs, err := srv.preferences.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preferences")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrNameRequired
		}
		prefs.Name = name
	}
	if input.Email != nil {
		if *input.Email != "" && !emailPattern.MatchString(*input.Email) {
			return nil, domainerrors.ErrInvalidEmail
		}
		prefs.Email = *input.Email
	}
	if input.Newsletter != nil {
		prefs.Newsletter = *input.Newsletter
	}
	if input.OrderUpdates != nil {
		prefs.OrderUpdates = *input.OrderUpdates
	}
	if input.NewArrivals != nil {
		prefs.NewArrivals = *input.NewArrivals
	}

	if err := srv.preferences.Save(ctx, prefs); err != nil {
		return nil, errors.Wrap(err, "failed to save preferences")
	}

	srv.logger.Info("Updated preferences")
	srv.notifier.Notify(ctx, service.NotifySuccess, "Preferencias guardadas")

	return srv.Get(ctx)
}

// SubscribeNewsletter records a footer signup and re-enables the
// newsletter flag.
func (srv *preferenceService) SubscribeNewsletter(ctx context.Context, input *usecase.NewsletterInput) error {
	if !emailPattern.MatchString(input.Email) {
		return domainerrors.ErrInvalidEmail
	}

	prefs, err := srv.preferences.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load preferences")
	}

	prefs.Newsletter = true
	if prefs.Email == "" {
		prefs.Email = input.Email
	}

	if err := srv.preferences.Save(ctx, prefs); err != nil {
		return errors.Wrap(err, "failed to save newsletter subscription")
	}

	srv.logger.Info("Newsletter subscription", slog.String("email", input.Email))
	srv.notifier.Notify(ctx, service.NotifySuccess, "¡Gracias por suscribirte!")

	return nil
}
