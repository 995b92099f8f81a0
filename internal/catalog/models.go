package catalog

// ProductImage is one gallery entry attached to a menu item.
type ProductImage struct {
	ID            string `json:"id"`
	ImageURL      string `json:"image_url"`
	ImagePublicID string `json:"image_public_id"`
	DisplayOrder  int    `json:"display_order"`
}

// Product mirrors the menu item payload served by the storefront API.
type Product struct {
	ID            string         `json:"id"`
	CategoryID    string         `json:"category_id"`
	CategoryName  string         `json:"category_name"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	DiscountPrice float64        `json:"discount_price"`
	StockQuantity int            `json:"stock_quantity"`
	AverageRating float64        `json:"average_rating"`
	Tags          []string       `json:"tags"`
	Images        []ProductImage `json:"images"`
	Favorite      bool           `json:"favorite"`
}

// Category mirrors the category payload served by the storefront API.
type Category struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Description      string `json:"description"`
	CatImageURL      string `json:"cat_image_url"`
	CatImagePublicID string `json:"cat_image_public_id"`
	DisplayOrder     int    `json:"displayOrder"`
	IsActive         bool   `json:"isActive"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}
