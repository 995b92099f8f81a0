package enums

// DeliveryType represents how an order leaves the restaurant.
type DeliveryType string

const (
	// DeliveryTypeDelivery indicates a rider brings the order to the customer.
	DeliveryTypeDelivery DeliveryType = "delivery"
	// DeliveryTypePickup indicates the customer collects the order.
	DeliveryTypePickup DeliveryType = "pickup"
)
