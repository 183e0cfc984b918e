package entity

import "github.com/shopspring/decimal"

// WishlistItem is a saved product reference. The wishlist is shared
// across identities: it lives under a single storage key regardless of
// who is logged in.
type WishlistItem struct {
	Name     string          // Product name, unique within the wishlist.
	Price    decimal.Decimal // Display price captured when the item was saved.
	ImageRef string          // Opaque image reference, display-only.
}

// Wishlist is an ordered collection of saved products.
type Wishlist struct {
	Items []WishlistItem
}

// FindItem returns the index of the item with the given name, or -1.
func (w *Wishlist) FindItem(name string) int {
	for i := range w.Items {
		if w.Items[i].Name == name {
			return i
		}
	}

	return -1
}
