package checkout

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"geministore.com/app/internal/modules/cart"
	"geministore.com/app/internal/modules/catalog"
	"geministore.com/app/internal/shared/apperr"
	"geministore.com/app/internal/shared/randid"
)

// Finalizer turns a cart into an order: recompute totals, decrement stock,
// persist the catalog, clear the cart. Steps are not transactional; if the
// catalog persist fails after the in-memory decrement, the divergence is
// logged and the order is still returned.
type Finalizer struct {
	catalog *catalog.Store
}

func NewFinalizer(cat *catalog.Store) *Finalizer {
	return &Finalizer{catalog: cat}
}

func (f *Finalizer) Confirm(ctx context.Context, c *cart.Cart, details CheckoutDetails) (Order, error) {
	items := c.Items()
	if len(items) == 0 {
		return Order{}, apperr.InvalidErr("Your cart is empty.", nil)
	}

	// Totals are recomputed here from the items, never trusted from a
	// previously rendered cart page.
	t := cart.ComputeTotals(items)

	order := Order{
		ID:          newOrderID(),
		Items:       items,
		Details:     details,
		Subtotal:    t.Subtotal,
		GSTAmount:   t.GSTAmount,
		ShippingFee: t.ShippingFee,
		GrandTotal:  t.GrandTotal,
		OrderDate:   time.Now().UTC(),
		Status:      StatusConfirmed,
	}

	lines := make([]catalog.StockLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, catalog.StockLine{ProductID: it.ID, Qty: it.Quantity})
	}
	// Decrement clamps at zero: last-resort guard for quantities that
	// drifted above stock between the cart page and this confirmation.
	if err := f.catalog.DecrementClamped(ctx, lines); err != nil {
		log.Printf("checkout: order %s confirmed but catalog persist failed: %v", order.ID, err)
	}

	c.Clear()
	return order, nil
}

// newOrderID is time-based with a short random suffix. Enough to avoid
// same-millisecond collisions in a single process, nothing more.
func newOrderID() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), strings.ToUpper(randid.Suffix(5)))
}
