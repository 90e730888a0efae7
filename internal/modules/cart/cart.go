package cart

import (
	"sync"

	"geministore.com/app/internal/modules/catalog"
)

// Item is a detached copy of a product plus a quantity. It does not alias
// the catalog; stock is re-checked against the catalog on every mutation.
type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Cart is the session-local accumulator. One cart per session.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

func New() *Cart { return &Cart{} }

// Items returns a copy of the current lines.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Count is the total quantity across lines (the header badge number).
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear empties the cart (checkout confirmation, logout).
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}
