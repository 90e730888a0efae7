package view

type ProductCard struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Stock       int     `json:"stock"`
	OutOfStock  bool    `json:"outOfStock"`
}

type Category struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// AdminOverview mirrors the store overview cards of the admin panel.
type AdminOverview struct {
	TotalProducts int `json:"totalProducts"`
	InStock       int `json:"inStock"`
	OutOfStock    int `json:"outOfStock"`
}
