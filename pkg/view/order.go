package view

import "time"

type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	ImageURL  string  `json:"imageUrl"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

type OrderDetails struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	AddressLine1  string `json:"addressLine1"`
	City          string `json:"city"`
	Pincode       string `json:"pincode"`
	PaymentMethod string `json:"paymentMethod"`
}

type OrderSummary struct {
	ID          string       `json:"id"`
	Items       []OrderItem  `json:"items"`
	Details     OrderDetails `json:"checkoutDetails"`
	Subtotal    float64      `json:"subtotal"`
	GSTAmount   float64      `json:"gstAmount"`
	ShippingFee float64      `json:"shippingFee"`
	GrandTotal  float64      `json:"grandTotal"`
	OrderDate   time.Time    `json:"orderDate"`
	Status      string       `json:"status"`
}
