package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DiscountHandler holds dependencies for promotion code handlers.
type DiscountHandler struct {
	uc     usecase.DiscountUsecase
	logger *slog.Logger
}

// NewDiscountHandler is the constructor for DiscountHandler, injected by Fx.
func NewDiscountHandler(uc usecase.DiscountUsecase, logger *slog.Logger) *DiscountHandler {
	return &DiscountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Apply validates and activates a promotion code.
func (h *DiscountHandler) Apply(c echo.Context) error {
	var input *usecase.ApplyDiscountInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	view, err := h.uc.Apply(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Descuento aplicado")
}

// Current returns the active discount.
func (h *DiscountHandler) Current(c echo.Context) error {
	view, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}
