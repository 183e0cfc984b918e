package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// CartUsecase defines the interface for cart-related business operations.
// The active cart follows the current identity: cart_<email> when an
// email is known, cart_guest otherwise.
type CartUsecase interface {
	Get(ctx context.Context) (*CartView, error)

	// AddItem merges by product name: adding an existing product
	// increments its quantity instead of creating a second line.
	AddItem(ctx context.Context, input *AddItemInput) (*CartView, error)

	// ChangeQuantity adjusts the line at index by delta. A resulting
	// quantity of zero or less removes the line. An out-of-range index is
	// a no-op.
	ChangeQuantity(ctx context.Context, index, delta int) (*CartView, error)

	// RemoveItem deletes the line at index. An out-of-range index is a no-op.
	RemoveItem(ctx context.Context, index int) (*CartView, error)

	// Clear empties the active cart.
	Clear(ctx context.Context) error

	// Summary computes the order totals under the current discount and
	// shipping policy.
	Summary(ctx context.Context) (*CartSummary, error)
}

// --- Input DTOs ---

// AddItemInput defines the product being added to the cart.
type AddItemInput struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	ImageRef string          `json:"img"`
	Quantity int             `json:"qty"`
}

// --- Output DTOs ---

// CartLineView is one rendered cart line.
type CartLineView struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	ImageRef  string `json:"img,omitempty"`
	Quantity  int    `json:"qty"`
	LineTotal string `json:"line_total"`
}

// CartView is the rendered cart state.
type CartView struct {
	Lines         []CartLineView `json:"lines"`
	TotalQuantity int            `json:"total_quantity"`
}

// CartSummary is the order total breakdown. Amounts are fixed to two
// decimals; the discount amount is zero when no discount is active.
type CartSummary struct {
	Subtotal        string `json:"subtotal"`
	DiscountCode    string `json:"discount_code,omitempty"`
	DiscountPercent string `json:"discount_percent,omitempty"`
	DiscountAmount  string `json:"discount_amount"`
	Shipping        string `json:"shipping"`
	FreeShipping    bool   `json:"free_shipping"`
	Total           string `json:"total"`
}
