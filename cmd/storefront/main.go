package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/gateway"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/notify"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/infra/persistence/kvstore"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		kv.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kvstore.NewSessionRepository,
			kvstore.NewCartRepository,
			kvstore.NewDiscountRepository,
			kvstore.NewWishlistRepository,
			kvstore.NewPreferenceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			sessionConfig,
			pricingConfig,
			checkoutConfig,
			gatewayConfig,
			discountTable,
			newQRCodeService,
			newStrengthScorer,
			gateway.NewSimulatedGateway,
			notify.NewLogNotifier,
		),
	)
}

// Sub-config extractors keep the service constructors ignorant of the
// full configuration tree.

func sessionConfig(cfg *config.Config) *config.SessionConfig { return cfg.Session }

func pricingConfig(cfg *config.Config) *config.PricingConfig { return cfg.Pricing }

func checkoutConfig(cfg *config.Config) *config.CheckoutConfig { return cfg.Checkout }

func gatewayConfig(cfg *config.Config) *config.GatewayConfig { return cfg.Gateway }

func discountTable(cfg *config.Config) map[string]float64 { return cfg.Discounts }

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode)
}

// newStrengthScorer creates the password strength scorer
func newStrengthScorer(cfg *config.Config) service.PasswordStrengthScorer {
	return auth.NewStrengthScorer(cfg.PasswordStrength)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCartService,
			impl.NewDiscountService,
			impl.NewCheckoutService,
			impl.NewWishlistService,
			impl.NewPreferenceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCartHandler,
			handler.NewDiscountHandler,
			handler.NewCheckoutHandler,
			handler.NewWishlistHandler,
			handler.NewPreferenceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
