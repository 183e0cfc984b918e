package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler holds dependencies for saved-product handlers.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the saved products.
func (h *WishlistHandler) List(c echo.Context) error {
	view, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Toggle adds or removes a product.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	var input *usecase.WishlistItemInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, added, err := h.uc.Toggle(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Eliminado de favoritos"
	if added {
		message = "Agregado a favoritos"
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"added":    added,
		"wishlist": view,
	}, message)
}

// Remove deletes the product named by :name.
func (h *WishlistHandler) Remove(c echo.Context) error {
	view, err := h.uc.Remove(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Eliminado de favoritos")
}

// MoveToCart moves the product named by :name into the cart.
func (h *WishlistHandler) MoveToCart(c echo.Context) error {
	view, err := h.uc.MoveToCart(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Producto agregado al carrito")
}
