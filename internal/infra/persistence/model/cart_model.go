package model

import "github.com/shopspring/decimal"

// CartLineModel is the persisted form of a cart line. The short field
// names (img, qty) are the inherited storage schema.
type CartLineModel struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Img   string          `json:"img"`
	Qty   int             `json:"qty"`
}

// WishlistItemModel is the persisted form of a saved product. Prices
// were historically stored both as numbers and as scraped strings;
// decimal.Decimal parses either.
type WishlistItemModel struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Img   string          `json:"img"`
}
