package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PreferenceHandler holds dependencies for preference handlers.
type PreferenceHandler struct {
	uc     usecase.PreferenceUsecase
	logger *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler, injected by Fx.
func NewPreferenceHandler(uc usecase.PreferenceUsecase, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns the stored preferences.
func (h *PreferenceHandler) Get(c echo.Context) error {
	view, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Update overwrites the provided preference fields.
func (h *PreferenceHandler) Update(c echo.Context) error {
	var input *usecase.UpdatePreferencesInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	view, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Preferencias guardadas")
}

// SubscribeNewsletter records a footer newsletter signup.
func (h *PreferenceHandler) SubscribeNewsletter(c echo.Context) error {
	var input *usecase.NewsletterInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid newsletter input")
	}

	if err := h.uc.SubscribeNewsletter(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "¡Gracias por suscribirte!")
}
