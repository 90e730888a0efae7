package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geministore.com/app/internal/modules/catalog"
	"geministore.com/app/internal/shared/apperr"
	"geministore.com/app/internal/store"
)

func newService(t *testing.T, items []catalog.Product) (*Service, *catalog.Store) {
	t.Helper()
	cat := catalog.NewStore(store.NewMemory())
	require.NoError(t, cat.Replace(context.Background(), items))
	return NewService(cat), cat
}

func TestAddOutOfStockLeavesCartUnchanged(t *testing.T) {
	svc, _ := newService(t, []catalog.Product{
		{ID: "p1", Name: "GamerX Headset Elite", Price: 89.99, Stock: 0},
	})
	c := New()

	_, err := svc.Add(c, "p1")
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Conflict, ae.Kind)
	assert.Equal(t, "GamerX Headset Elite is out of stock.", ae.PublicMsg)
	assert.Zero(t, c.Len())
}

func TestAddIncrementsUntilMaxStock(t *testing.T) {
	svc, _ := newService(t, []catalog.Product{
		{ID: "p1", Name: "Widget", Price: 10, Stock: 2},
	})
	c := New()

	_, err := svc.Add(c, "p1")
	require.NoError(t, err)
	_, err = svc.Add(c, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Count())

	_, err = svc.Add(c, "p1")
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Cannot add more Widget. Max stock reached in cart.", ae.PublicMsg)
	assert.Equal(t, 2, c.Count())
}

func TestAddUnknownProduct(t *testing.T) {
	svc, _ := newService(t, nil)
	c := New()

	_, err := svc.Add(c, "ghost")
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
}

func TestAddSeesAdminStockChangesLazily(t *testing.T) {
	svc, cat := newService(t, []catalog.Product{
		{ID: "p1", Name: "Widget", Price: 10, Stock: 1},
	})
	c := New()

	_, err := svc.Add(c, "p1")
	require.NoError(t, err)

	// admin raises stock; next mutation observes it
	require.NoError(t, cat.SetStock(context.Background(), "p1", 3))
	_, err = svc.Add(c, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Count())
}

func TestRemoveIsUnconditional(t *testing.T) {
	svc, _ := newService(t, []catalog.Product{
		{ID: "p1", Name: "Widget", Price: 10, Stock: 5},
	})
	c := New()

	svc.Remove(c, "never-added")

	_, err := svc.Add(c, "p1")
	require.NoError(t, err)
	svc.Remove(c, "p1")
	assert.Zero(t, c.Len())
}

func TestSetQuantity(t *testing.T) {
	svc, _ := newService(t, []catalog.Product{
		{ID: "p1", Name: "Widget", Price: 10, Stock: 3},
	})
	c := New()
	_, err := svc.Add(c, "p1")
	require.NoError(t, err)

	// exact set within stock
	res := svc.SetQuantity(c, "p1", 3)
	assert.Equal(t, 3, res.Quantity)
	assert.False(t, res.Clamped)

	// over stock clamps, does not reject
	res = svc.SetQuantity(c, "p1", 10)
	assert.True(t, res.Clamped)
	assert.Equal(t, 3, res.Quantity)
	assert.Equal(t, "Quantity for Widget limited to available stock (3).", res.Message)

	// zero and below removes
	res = svc.SetQuantity(c, "p1", 0)
	assert.True(t, res.Removed)
	assert.Zero(t, c.Len())

	// missing line is a silent no-op
	res = svc.SetQuantity(c, "p1", 2)
	assert.Equal(t, SetQuantityResult{}, res)
}

func TestComputeTotals(t *testing.T) {
	// the worked checkout example: 2 x 100 -> 200 + 36 GST + 40 shipping
	items := []Item{{Product: catalog.Product{ID: "p1", Price: 100}, Quantity: 2}}
	tt := ComputeTotals(items)
	assert.InDelta(t, 200.00, tt.Subtotal, 1e-9)
	assert.InDelta(t, 36.00, tt.GSTAmount, 1e-9)
	assert.InDelta(t, 40.00, tt.ShippingFee, 1e-9)
	assert.InDelta(t, 276.00, tt.GrandTotal, 1e-9)
}

func TestComputeTotalsShippingWaived(t *testing.T) {
	items := []Item{{Product: catalog.Product{Price: 150}, Quantity: 2}}
	tt := ComputeTotals(items)
	assert.InDelta(t, 300.0, tt.Subtotal, 1e-9)
	assert.Zero(t, tt.ShippingFee)
	assert.InDelta(t, 354.0, tt.GrandTotal, 1e-9)
}

func TestComputeTotalsEmptyCartHasNoShipping(t *testing.T) {
	tt := ComputeTotals(nil)
	assert.Zero(t, tt.Subtotal)
	assert.Zero(t, tt.ShippingFee)
	assert.Zero(t, tt.GrandTotal)
}

func TestPageReflectsLiveStock(t *testing.T) {
	svc, cat := newService(t, []catalog.Product{
		{ID: "p1", Name: "Widget", Category: "Gadgets", Price: 25, Stock: 4},
	})
	c := New()
	_, err := svc.Add(c, "p1")
	require.NoError(t, err)
	res := svc.SetQuantity(c, "p1", 2)
	require.Equal(t, 2, res.Quantity)

	require.NoError(t, cat.SetStock(context.Background(), "p1", 1))

	page := svc.Page(c)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.Items[0].Quantity) // not reactively shrunk
	assert.Equal(t, 1, page.Items[0].AvailableStock)
	assert.InDelta(t, 50.0, page.Subtotal, 1e-9)
	assert.InDelta(t, 9.0, page.GSTAmount, 1e-9)
	assert.InDelta(t, 40.0, page.ShippingFee, 1e-9)
	assert.InDelta(t, 99.0, page.GrandTotal, 1e-9)
	assert.Equal(t, 2, page.Count)
}
