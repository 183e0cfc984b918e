package entity

import "github.com/shopspring/decimal"

// Discount is the single active promotion: a scalar fraction in [0, 1)
// applied to the cart subtotal before shipping. It persists
// independently of the cart and survives cart changes; only logout
// clears it. Codes do not stack.
type Discount struct {
	Code     string          // Canonical upper-case promotion code that produced this fraction.
	Fraction decimal.Decimal // Subtotal reduction, e.g. 0.10 for ten percent.
}

// IsZero reports whether no discount is active.
func (d *Discount) IsZero() bool {
	return d == nil || d.Fraction.IsZero()
}

// Apply returns the subtotal reduced by the discount fraction.
func (d *Discount) Apply(subtotal decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return subtotal
	}

	return subtotal.Sub(subtotal.Mul(d.Fraction))
}
