package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for checkout handoff handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// Message returns the plain-text order message.
func (h *CheckoutHandler) Message(c echo.Context) error {
	message, err := h.uc.Message(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": message}, "")
}

// Link returns the wa.me handoff URL.
func (h *CheckoutHandler) Link(c echo.Context) error {
	link, err := h.uc.Link(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"link": link}, "")
}

// QRCode returns the handoff URL as a PNG QR code.
func (h *CheckoutHandler) QRCode(c echo.Context) error {
	png, err := h.uc.QRCodePNG(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
