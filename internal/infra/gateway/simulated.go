// Package gateway provides the simulated storefront backend.
package gateway

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// SimulatedGateway stands in for a backend that does not exist yet.
// Every round trip takes a fixed delay and then succeeds, which keeps
// the login and registration flows honest about latency without
// needing network access.
type SimulatedGateway struct {
	delay  time.Duration
	logger *slog.Logger
}

// NewSimulatedGateway creates the gateway with the configured delay.
func NewSimulatedGateway(cfg *config.GatewayConfig, logger *slog.Logger) service.BackendGateway {
	delay := 1500 * time.Millisecond
	if cfg != nil && cfg.Delay > 0 {
		delay = cfg.Delay
	}

	return &SimulatedGateway{delay: delay, logger: logger}
}

// Authenticate simulates the login round trip.
func (g *SimulatedGateway) Authenticate(ctx context.Context, email, _ string) error {
	g.logger.Debug("Simulating authentication round trip", slog.String("email", email))

	return g.roundTrip(ctx)
}

// Register simulates the account creation round trip.
func (g *SimulatedGateway) Register(ctx context.Context, _, email, _ string) error {
	g.logger.Debug("Simulating registration round trip", slog.String("email", email))

	return g.roundTrip(ctx)
}

// RequestPasswordReset simulates the recovery email round trip.
func (g *SimulatedGateway) RequestPasswordReset(ctx context.Context, email string) error {
	g.logger.Debug("Simulating password reset round trip", slog.String("email", email))

	return g.roundTrip(ctx)
}

// roundTrip waits out the configured delay, honoring cancellation so a
// dropped request does not hold the busy flag.
func (g *SimulatedGateway) roundTrip(ctx context.Context) error {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}
