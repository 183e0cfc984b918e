package usecase

import "context"

// PreferenceUsecase defines the interface for profile and notification
// preference operations.
type PreferenceUsecase interface {
	Get(ctx context.Context) (*PreferencesView, error)

	// Update overwrites the provided fields. Nil flags keep their stored
	// value.
	Update(ctx context.Context, input *UpdatePreferencesInput) (*PreferencesView, error)

	// SubscribeNewsletter records a footer newsletter signup.
	SubscribeNewsletter(ctx context.Context, input *NewsletterInput) error
}

// --- Input DTOs ---

// UpdatePreferencesInput defines the data required to update preferences.
type UpdatePreferencesInput struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Newsletter   *bool   `json:"newsletter,omitempty"`
	OrderUpdates *bool   `json:"order_updates,omitempty"`
	NewArrivals  *bool   `json:"new_arrivals,omitempty"`
}

// NewsletterInput carries the footer signup email.
type NewsletterInput struct {
	Email string `json:"email" validate:"required,email"`
}

// --- Output DTOs ---

// PreferencesView is the rendered preference state.
type PreferencesView struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Newsletter   bool   `json:"newsletter"`
	OrderUpdates bool   `json:"order_updates"`
	NewArrivals  bool   `json:"new_arrivals"`
}
