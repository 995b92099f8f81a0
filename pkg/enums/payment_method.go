package enums

// PaymentMethod represents how an order was paid for.
type PaymentMethod string

const (
	// PaymentMethodCOD indicates cash on delivery.
	PaymentMethodCOD PaymentMethod = "cod"
	// PaymentMethodBkash indicates a bKash mobile payment.
	PaymentMethodBkash PaymentMethod = "bkash"
	// PaymentMethodCard indicates a card payment.
	PaymentMethodCard PaymentMethod = "card"
)
