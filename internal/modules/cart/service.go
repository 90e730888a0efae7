package cart

import (
	"fmt"

	"geministore.com/app/internal/modules/catalog"
	"geministore.com/app/internal/shared/apperr"
	"geministore.com/app/pkg/view"
)

// Service applies cart mutations against live catalog stock. The catalog is
// the single source of truth; the cart never reserves anything, so stock
// changed elsewhere is only picked up on the next mutation.
type Service struct {
	catalog *catalog.Store
}

func NewService(cat *catalog.Store) *Service {
	return &Service{catalog: cat}
}

// Add puts one unit of the product in the cart, or bumps an existing line
// by one when stock allows.
func (s *Service) Add(c *Cart, productID string) (catalog.Product, error) {
	p, ok := s.catalog.Get(productID)
	if !ok {
		return catalog.Product{}, apperr.NotFoundErr("Product not found.")
	}
	if p.Stock <= 0 {
		return catalog.Product{}, apperr.ConflictErr(fmt.Sprintf("%s is out of stock.", p.Name))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID != productID {
			continue
		}
		if c.items[i].Quantity >= p.Stock {
			return catalog.Product{}, apperr.ConflictErr(fmt.Sprintf("Cannot add more %s. Max stock reached in cart.", p.Name))
		}
		c.items[i].Quantity++
		return p, nil
	}

	c.items = append(c.items, Item{Product: p, Quantity: 1})
	return p, nil
}

// Remove always succeeds, even when the product is not in the cart.
func (s *Service) Remove(c *Cart, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

type SetQuantityResult struct {
	// Removed is set when the requested quantity was zero or below.
	Removed bool
	// Clamped is set when the request exceeded stock and was limited.
	Clamped bool
	// Quantity is the line quantity after the operation (0 when removed).
	Quantity int
	// Message is the user-visible clamp notice, empty otherwise.
	Message string
}

// SetQuantity sets a line's quantity, clamping to current catalog stock
// rather than rejecting. Missing lines are a silent no-op.
func (s *Service) SetQuantity(c *Cart, productID string, qty int) SetQuantityResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.items {
		if c.items[i].ID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return SetQuantityResult{}
	}

	name := c.items[idx].Name

	if qty <= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
		return SetQuantityResult{Removed: true}
	}

	available := s.catalog.Stock(productID)
	if qty > available {
		msg := fmt.Sprintf("Quantity for %s limited to available stock (%d).", name, available)
		if available == 0 {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return SetQuantityResult{Removed: true, Clamped: true, Message: msg}
		}
		c.items[idx].Quantity = available
		return SetQuantityResult{Clamped: true, Quantity: available, Message: msg}
	}

	c.items[idx].Quantity = qty
	return SetQuantityResult{Quantity: qty}
}

// Page builds the cart screen view: lines with live stock plus totals.
func (s *Service) Page(c *Cart) view.CartPage {
	items := c.Items()
	t := ComputeTotals(items)

	page := view.CartPage{
		Items:       make([]view.CartItem, 0, len(items)),
		Subtotal:    t.Subtotal,
		GSTAmount:   t.GSTAmount,
		ShippingFee: t.ShippingFee,
		GrandTotal:  t.GrandTotal,
	}
	for _, it := range items {
		page.Count += it.Quantity
		page.Items = append(page.Items, view.CartItem{
			ProductID:      it.ID,
			Name:           it.Name,
			Category:       it.Category,
			ImageURL:       it.ImageURL,
			Price:          it.Price,
			Quantity:       it.Quantity,
			LineTotal:      it.Price * float64(it.Quantity),
			AvailableStock: s.catalog.Stock(it.ID),
		})
	}
	return page
}
