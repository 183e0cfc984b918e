// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/service"
)

// SessionUsecase defines the interface for session-related business operations.
// The storefront holds exactly one session at a time; every operation
// acts on that single slot.
type SessionUsecase interface {
	// Restore re-reads the persisted session, running the one-time legacy
	// migration, enforcing the TTL and scheduling the welcome
	// notification. It returns the logged-out view when nothing valid is
	// persisted.
	Restore(ctx context.Context) (*SessionView, error)

	Login(ctx context.Context, input *LoginInput) (*SessionView, error)
	Register(ctx context.Context, input *RegisterInput) (*SessionView, error)
	LoginAsGuest(ctx context.Context) (*SessionView, error)
	Logout(ctx context.Context) error

	RequestPasswordReset(ctx context.Context, input *PasswordResetInput) error
	PasswordStrength(password string) service.StrengthReport
}

// --- Input DTOs ---

// LoginInput defines the credentials for the login flow.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// PasswordResetInput defines the recovery request.
type PasswordResetInput struct {
	Email string `json:"email" validate:"required,email"`
}

// --- Output DTOs ---

// SessionView is the session state returned to the delivery layer.
type SessionView struct {
	LoggedIn    bool      `json:"logged_in"`
	ID          string    `json:"id,omitempty"`
	Email       string    `json:"email,omitempty"`
	Name        string    `json:"name,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
	Kind        string    `json:"kind,omitempty"`
	LoginAt     time.Time `json:"login_at,omitzero"`
}
