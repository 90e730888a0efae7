package cart

const (
	GSTRate           = 0.18
	ShippingThreshold = 300.0
	ShippingFee       = 40.0
)

type Totals struct {
	Subtotal    float64
	GSTAmount   float64
	ShippingFee float64
	GrandTotal  float64
}

// ComputeTotals derives the order money from cart lines. The checkout
// finalizer recomputes with this same function so the two can never drift.
func ComputeTotals(items []Item) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += it.Price * float64(it.Quantity)
	}
	t.GSTAmount = t.Subtotal * GSTRate
	if len(items) > 0 && t.Subtotal < ShippingThreshold {
		t.ShippingFee = ShippingFee
	}
	t.GrandTotal = t.Subtotal + t.GSTAmount + t.ShippingFee
	return t
}
