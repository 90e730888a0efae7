package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geministore.com/app/internal/http/middleware"
	"geministore.com/app/internal/http/render"
	"geministore.com/app/internal/modules/catalog"
	"geministore.com/app/pkg/view"
)

// ProductsHandler serves the shopper-facing catalog views.
type ProductsHandler struct {
	Catalog *catalog.Store
}

func NewProductsHandler(cat *catalog.Store) *ProductsHandler {
	return &ProductsHandler{Catalog: cat}
}

// List handles GET /api/products?search=&category=. Shoppers only see items
// in stock; an admin session sees everything.
func (h *ProductsHandler) List(c *gin.Context) {
	term := c.Query("search")
	category := c.Query("category")

	includeOutOfStock := false
	if sess, ok := middleware.CurrentSession(c); ok {
		includeOutOfStock = sess.IsAdmin()
		// remember the filter so it survives within the session
		sess.SetFilter(term, category)
	}

	products := h.Catalog.Search(term, category, includeOutOfStock)
	render.JSON(c, http.StatusOK, gin.H{"products": toCards(products)})
}

// Categories handles GET /api/categories.
func (h *ProductsHandler) Categories(c *gin.Context) {
	names := h.Catalog.Categories()
	out := make([]view.Category, 0, len(names))
	for _, name := range names {
		out = append(out, view.Category{Name: name, ImageURL: catalog.CategoryImage(name)})
	}
	render.JSON(c, http.StatusOK, gin.H{"categories": out})
}

func toCards(products []catalog.Product) []view.ProductCard {
	cards := make([]view.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, view.ProductCard{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
			ImageURL:    p.ImageURL,
			Stock:       p.Stock,
			OutOfStock:  !p.InStock(),
		})
	}
	return cards
}
