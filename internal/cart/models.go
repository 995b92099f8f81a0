package cart

import (
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/enums"
	"github.com/shopspring/decimal"
)

// ItemImage is one image entry attached to a cart line.
type ItemImage struct {
	ID           string `json:"id"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
	IsPrimary    bool   `json:"is_primary"`
}

// Item mirrors the cart line payload served by the storefront API.
type Item struct {
	CartID        string      `json:"cart_id"`
	MenuItemID    string      `json:"menu_item_id"`
	CategoryName  string      `json:"category_name"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         float64     `json:"price"`
	OriginalPrice float64     `json:"originalPrice,omitempty"`
	LineSubtotal  float64     `json:"line_subtotal"`
	Quantity      int         `json:"quantity"`
	InStock       bool        `json:"inStock"`
	StockQuantity int         `json:"stock_quantity,omitempty"`
	Images        []ItemImage `json:"image"`
}

// DeliveryOption is one of the fixed delivery tiers offered at checkout.
type DeliveryOption struct {
	ID    enums.DeliveryTier `json:"id"`
	Name  string             `json:"name"`
	Price decimal.Decimal    `json:"price"`
	Time  string             `json:"time"`
}

// Summary totals a cart for display. Money math runs on decimals so the
// float prices coming off the wire never accumulate rounding drift.
type Summary struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	Total        decimal.Decimal `json:"total"`
	ItemCount    int             `json:"item_count"`
	IsEmpty      bool            `json:"is_empty"`
	EmptyMessage string          `json:"empty_message,omitempty"`
}

// AddResult reports a successful add along with where the UI should land.
type AddResult struct {
	Redirect string `json:"redirect"`
}
