package models

// PaymentMethodBankTransfer is the only payment method the storefront offers.
const PaymentMethodBankTransfer = "bank_transfer"

// OrderItem is one line of a submitted order.
type OrderItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CustomerInfo carries the delivery details collected in step two of the
// wizard.
type CustomerInfo struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	DeliveryDate string `json:"deliveryDate"`
}

// OrderPayload is the complete order as submitted to the notification
// gateway. It lives for the duration of one submission and is never
// persisted.
type OrderPayload struct {
	Items         []OrderItem  `json:"items"`
	Customer      CustomerInfo `json:"customer"`
	PaymentMethod string       `json:"paymentMethod"`
	Total         float64      `json:"total"`
	Timestamp     string       `json:"timestamp"`
}
