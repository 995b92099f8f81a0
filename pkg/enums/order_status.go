package enums

// OrderStatus represents where an order sits in the kitchen pipeline.
type OrderStatus string

const (
	// OrderStatusPending indicates the order has not been picked up by the kitchen yet.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusPreparing indicates the kitchen is working on the order.
	OrderStatusPreparing OrderStatus = "preparing"
	// OrderStatusReady indicates the order is ready for handoff.
	OrderStatusReady OrderStatus = "ready"
	// OrderStatusDelivered indicates the order reached the customer.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled indicates the order was cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
)
