package catalog

// Product is the catalog's unit of stock. Copies of it travel into carts and
// orders; the catalog's own slice is the only authoritative one.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Stock       int     `json:"stock"`
}

func (p Product) InStock() bool { return p.Stock > 0 }
