package entity

import "github.com/shopspring/decimal"

// CartLine is a single line item of a cart. The product name is the
// only identifier; the catalog carries no SKU.
type CartLine struct {
	Name      string          // Unique within a cart; adding an existing name merges quantities.
	UnitPrice decimal.Decimal // Non-negative display price in storefront currency units.
	ImageRef  string          // Opaque image reference, display-only.
	Quantity  int             // Always >= 1; a line reaching zero is removed, not retained.
}

// LineTotal returns unit price times quantity.
func (l *CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered sequence of lines. Insertion order is significant:
// it drives checkout message numbering and rendering order.
type Cart struct {
	Lines []CartLine
}

// Subtotal sums unit price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for i := range c.Lines {
		sum = sum.Add(c.Lines[i].LineTotal())
	}

	return sum
}

// TotalQuantity sums the per-line quantities.
func (c *Cart) TotalQuantity() int {
	total := 0
	for i := range c.Lines {
		total += c.Lines[i].Quantity
	}

	return total
}

// FindLine returns the index of the line with the given name, or -1.
func (c *Cart) FindLine(name string) int {
	for i := range c.Lines {
		if c.Lines[i].Name == name {
			return i
		}
	}

	return -1
}
