package gateway

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(delay time.Duration) *SimulatedGateway {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSimulatedGateway(&config.GatewayConfig{Delay: delay}, logger).(*SimulatedGateway)
}

func TestSimulatedGateway_AcceptsAnyCredentials(t *testing.T) {
	gw := newTestGateway(time.Millisecond)
	ctx := context.Background()

	require.NoError(t, gw.Authenticate(ctx, "ana@example.com", "whatever"))
	require.NoError(t, gw.Register(ctx, "Ana", "ana@example.com", "whatever"))
	require.NoError(t, gw.RequestPasswordReset(ctx, "ana@example.com"))
}

func TestSimulatedGateway_TakesConfiguredDelay(t *testing.T) {
	delay := 30 * time.Millisecond
	gw := newTestGateway(delay)

	start := time.Now()
	require.NoError(t, gw.Authenticate(context.Background(), "a@b.com", "x"))
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestSimulatedGateway_HonorsCancellation(t *testing.T) {
	gw := newTestGateway(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := gw.Authenticate(ctx, "a@b.com", "x")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
