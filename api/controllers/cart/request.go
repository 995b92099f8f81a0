package cart

// addItemRequest mirrors the add-to-cart form: the item plus an optional
// quantity. Quantity zero means "default to one".
type addItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"gte=0,lte=10"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1,lte=10"`
}
