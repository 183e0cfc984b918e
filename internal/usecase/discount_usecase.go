package usecase

import "context"

// DiscountUsecase defines the interface for promotion code operations.
type DiscountUsecase interface {
	// Apply validates code against the promotion table (case-insensitive)
	// and activates it. An unknown code fails without touching the
	// currently active discount.
	Apply(ctx context.Context, input *ApplyDiscountInput) (*DiscountView, error)

	// Current returns the active discount, or an inactive view.
	Current(ctx context.Context) (*DiscountView, error)
}

// --- Input DTOs ---

// ApplyDiscountInput carries the submitted promotion code.
type ApplyDiscountInput struct {
	Code string `json:"code" validate:"required"`
}

// --- Output DTOs ---

// DiscountView is the rendered discount state.
type DiscountView struct {
	Active  bool   `json:"active"`
	Code    string `json:"code,omitempty"`
	Percent string `json:"percent,omitempty"`
}
