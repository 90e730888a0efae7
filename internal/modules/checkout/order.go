package checkout

import (
	"time"

	"geministore.com/app/internal/modules/cart"
)

type Status string

// Only Confirmed is ever assigned; the other statuses exist for the order
// record's sake and have no transition logic behind them.
const (
	StatusConfirmed Status = "Confirmed"
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
)

type CheckoutDetails struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	AddressLine1  string `json:"addressLine1"`
	City          string `json:"city"`
	Pincode       string `json:"pincode"`
	PaymentMethod string `json:"paymentMethod"`
}

// Order is an immutable snapshot taken at confirmation time. Nothing in the
// system mutates one after Confirm returns it.
type Order struct {
	ID          string          `json:"id"`
	Items       []cart.Item     `json:"items"`
	Details     CheckoutDetails `json:"checkoutDetails"`
	Subtotal    float64         `json:"subtotal"`
	GSTAmount   float64         `json:"gstAmount"`
	ShippingFee float64         `json:"shippingFee"`
	GrandTotal  float64         `json:"grandTotal"`
	OrderDate   time.Time       `json:"orderDate"`
	Status      Status          `json:"status"`
}
