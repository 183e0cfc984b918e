package service

import "context"

// BackendGateway models the remote storefront backend. There is none:
// the shipped implementation simulates a fixed-latency round trip that
// always succeeds. Keeping it behind an interface lets tests control
// timing and inject genuine failures deterministically.
type BackendGateway interface {
	// Authenticate performs the login round trip. Any credentials are
	// accepted by the simulated backend.
	Authenticate(ctx context.Context, email, password string) error

	// Register performs the account creation round trip.
	Register(ctx context.Context, name, email, password string) error

	// RequestPasswordReset performs the recovery email round trip.
	RequestPasswordReset(ctx context.Context, email string) error
}
