package view

type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	ImageURL  string  `json:"imageUrl"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
	// Stock the catalog currently reports; the UI warns when the cart
	// quantity has drifted above it.
	AvailableStock int `json:"availableStock"`
}

type CartPage struct {
	Items       []CartItem `json:"items"`
	Count       int        `json:"count"`
	Subtotal    float64    `json:"subtotal"`
	GSTAmount   float64    `json:"gstAmount"`
	ShippingFee float64    `json:"shippingFee"`
	GrandTotal  float64    `json:"grandTotal"`
}
