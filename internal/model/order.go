package model

// Order statuses. Only StatusProcessing is assigned by checkout; the
// remaining values describe the fulfilment lifecycle and are reserved
// for a future fulfilment integration.
const (
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusInTransit  = "In Transit"
	StatusDelivered  = "Delivered"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodUPI  = "upi"
	PaymentMethodCard = "card"
	PaymentMethodCOD  = "cod"
)

// ValidPaymentMethod reports whether method is one of the accepted
// payment methods.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodUPI, PaymentMethodCard, PaymentMethodCOD:
		return true
	}
	return false
}

// Address is the shipping address collected during checkout. Fields are
// collected as entered; no postal validation is applied.
type Address struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// Order is a confirmed purchase: a frozen snapshot of the cart at
// confirmation time plus generated identifiers. Orders are immutable
// once created.
type Order struct {
	ID             string     `json:"id"`
	Date           string     `json:"date"`
	Items          []CartLine `json:"items"`
	Total          float64    `json:"total"`
	Status         string     `json:"status"`
	TrackingNumber string     `json:"trackingNumber"`
	PaymentMethod  string     `json:"paymentMethod"`
	ReceiptID      string     `json:"receiptId"`
}
