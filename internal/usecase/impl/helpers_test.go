package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/infra/persistence/kvstore"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingNotifier captures delivered notifications for assertions.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, _ service.NotificationLevel, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	copy(out, n.messages)

	return out
}

func (n *recordingNotifier) contains(message string) bool {
	for _, m := range n.all() {
		if m == message {
			return true
		}
	}

	return false
}

// stubGateway answers round trips immediately, optionally failing.
type stubGateway struct {
	err error
}

func (g *stubGateway) Authenticate(context.Context, string, string) error { return g.err }
func (g *stubGateway) Register(context.Context, string, string, string) error {
	return g.err
}
func (g *stubGateway) RequestPasswordReset(context.Context, string) error { return g.err }

// stubScorer returns a fixed report.
type stubScorer struct {
	report service.StrengthReport
}

func (s *stubScorer) Score(string) service.StrengthReport { return s.report }

// fixture wires the services over one shared in-memory store so tests
// exercise the same persistence the production wiring uses.
type fixture struct {
	store     *kv.MemoryStore
	sessions  repository.SessionRepository
	carts     repository.CartRepository
	discounts repository.DiscountRepository
	wishlists repository.WishlistRepository
	prefs     repository.PreferenceRepository
	notifier  *recordingNotifier
	gateway   *stubGateway
	clock     time.Time
}

func newFixture() *fixture {
	store := kv.NewMemoryStore()
	logger := newTestLogger()

	return &fixture{
		store:     store,
		sessions:  kvstore.NewSessionRepository(store, logger),
		carts:     kvstore.NewCartRepository(store, logger),
		discounts: kvstore.NewDiscountRepository(store, logger),
		wishlists: kvstore.NewWishlistRepository(store, logger),
		prefs:     kvstore.NewPreferenceRepository(store, logger),
		notifier:  &recordingNotifier{},
		gateway:   &stubGateway{},
		clock:     time.UnixMilli(1700000000000),
	}
}

func (f *fixture) sessionConfig() *config.SessionConfig {
	return &config.SessionConfig{TTL: 24 * time.Hour, WelcomeDelay: time.Millisecond}
}

func (f *fixture) pricingConfig() *config.PricingConfig {
	return &config.PricingConfig{FreeShippingThreshold: 149, ShippingFee: 15}
}

func (f *fixture) checkoutConfig() *config.CheckoutConfig {
	return &config.CheckoutConfig{
		WhatsAppPhone:  "51958143259",
		StoreName:      "Samma.hub",
		CurrencyPrefix: "S/",
	}
}

func (f *fixture) discountTable() map[string]float64 {
	return map[string]float64{
		"SAMMA10":   0.10,
		"NEWIN15":   0.15,
		"WELCOME20": 0.20,
	}
}

func (f *fixture) newSessionService() *sessionService {
	srv := NewSessionService(
		f.sessions, f.discounts, f.gateway, f.notifier, &stubScorer{},
		f.sessionConfig(), newTestLogger(),
	).(*sessionService)
	srv.now = func() time.Time { return f.clock }

	return srv
}

func (f *fixture) newCartService() *cartService {
	return NewCartService(
		f.carts, f.sessions, f.discounts, f.notifier,
		f.pricingConfig(), newTestLogger(),
	).(*cartService)
}

func (f *fixture) newDiscountService() *discountService {
	return NewDiscountService(
		f.discounts, f.notifier, f.discountTable(), newTestLogger(),
	).(*discountService)
}

var _ repository.KVStore = (*kv.MemoryStore)(nil)
