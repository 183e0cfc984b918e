// Package handler contains the HTTP handlers for the storefront API.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Current returns the restored session state.
func (h *SessionHandler) Current(c echo.Context) error {
	view, err := h.uc.Restore(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Login handles the login request.
func (h *SessionHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	view, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Sesión iniciada")
}

// Register handles the account creation request.
func (h *SessionHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	view, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Cuenta creada")
}

// LoginAsGuest establishes an anonymous session.
func (h *SessionHandler) LoginAsGuest(c echo.Context) error {
	view, err := h.uc.LoginAsGuest(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Sesión de invitado iniciada")
}

// Logout clears the session.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sesión cerrada")
}

// PasswordReset triggers the recovery email flow.
func (h *SessionHandler) PasswordReset(c echo.Context) error {
	var input *usecase.PasswordResetInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset input")
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Enlace de recuperación enviado")
}

type passwordStrengthInput struct {
	Password string `json:"password"`
}

// PasswordStrength rates a candidate password.
func (h *SessionHandler) PasswordStrength(c echo.Context) error {
	var input passwordStrengthInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	report := h.uc.PasswordStrength(input.Password)

	return response.Success(c, http.StatusOK, map[string]any{
		"score":   report.Score,
		"label":   report.Label,
		"missing": report.Missing,
	}, "")
}
