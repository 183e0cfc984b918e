package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// discountService implements the DiscountUsecase interface.
type discountService struct {
	discounts repository.DiscountRepository
	notifier  service.Notifier
	// codes maps canonical upper-case promotion codes to fractions.
	codes  map[string]decimal.Decimal
	logger *slog.Logger
}

// NewDiscountService is the constructor for discountService. The
// promotion table comes from configuration and is fixed for the
// process lifetime.
func NewDiscountService(
	discounts repository.DiscountRepository,
	notifier service.Notifier,
	table map[string]float64,
	logger *slog.Logger,
) usecase.DiscountUsecase {
	codes := make(map[string]decimal.Decimal, len(table))
	for code, fraction := range table {
		codes[strings.ToUpper(code)] = decimal.NewFromFloat(fraction)
	}

	return &discountService{
		discounts: discounts,
		notifier:  notifier,
		codes:     codes,
		logger:    logger,
	}
}

// Apply validates and activates a promotion code. An unknown code fails
// without touching the active discount.
func (srv *discountService) Apply(ctx context.Context, input *usecase.ApplyDiscountInput) (*usecase.DiscountView, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, domainerrors.ErrDiscountCodeRequired
	}

	fraction, ok := srv.codes[code]
	if !ok {
		srv.notifier.Notify(ctx, service.NotifyError, "Código de descuento inválido")

		return nil, domainerrors.ErrInvalidDiscountCode
	}

	discount := &entity.Discount{Code: code, Fraction: fraction}
	if err := srv.discounts.Save(ctx, discount); err != nil {
		return nil, errors.Wrap(err, "failed to save discount")
	}

	srv.logger.Info("Applied discount", slog.String("code", code))
	srv.notifier.Notify(ctx, service.NotifySuccess,
		"Descuento del "+percentOf(fraction)+"% aplicado")

	return discountView(discount, srv.codes), nil
}

// Current returns the active discount, or an inactive view.
func (srv *discountService) Current(ctx context.Context) (*usecase.DiscountView, error) {
	discount, err := srv.discounts.Load(ctx)
	if errors.Is(err, repository.ErrDiscountNotFound) {
		return &usecase.DiscountView{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load discount")
	}

	return discountView(discount, srv.codes), nil
}

// discountView renders the discount, recovering the code from the
// promotion table when only the fraction survived persistence.
func discountView(discount *entity.Discount, codes map[string]decimal.Decimal) *usecase.DiscountView {
	code := discount.Code
	if code == "" {
		for candidate, fraction := range codes {
			if fraction.Equal(discount.Fraction) {
				code = candidate

				break
			}
		}
	}

	return &usecase.DiscountView{
		Active:  true,
		Code:    code,
		Percent: percentOf(discount.Fraction),
	}
}

func percentOf(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(0)
}
