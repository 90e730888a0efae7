package admin

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"geministore.com/app/internal/http/middleware"
	"geministore.com/app/internal/http/render"
	"geministore.com/app/internal/http/validation"
	"geministore.com/app/internal/imagestore"
	"geministore.com/app/internal/modules/catalog"
	"geministore.com/app/internal/shared/apperr"
	"geministore.com/app/pkg/view"
)

// ProductsHandler is the admin side of the catalog: full visibility plus
// add, delete and stock updates.
type ProductsHandler struct {
	Catalog *catalog.Store
	Images  imagestore.Store
}

func NewProductsHandler(cat *catalog.Store, images imagestore.Store) *ProductsHandler {
	return &ProductsHandler{Catalog: cat, Images: images}
}

// List handles GET /api/admin/products: everything, including items out of
// stock, with the overview counts for the dashboard cards.
func (h *ProductsHandler) List(c *gin.Context) {
	products := h.Catalog.List()

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

	total, inStock, outOfStock := h.Catalog.Overview()
	render.JSON(c, http.StatusOK, gin.H{
		"products": cards,
		"overview": view.AdminOverview{
			TotalProducts: total,
			InStock:       inStock,
			OutOfStock:    outOfStock,
		},
	})
}

type addProductInput struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Description string  `json:"description" form:"description" binding:"required"`
	Price       float64 `json:"price" form:"price"`
	Category    string  `json:"category" form:"category" binding:"required"`
	ImageURL    string  `json:"imageUrl" form:"imageUrl"`
	Stock       int     `json:"stock" form:"stock"`
}

// Add handles POST /api/admin/products. JSON with an imageUrl, or multipart
// with an optional image file; an explicit URL wins over the upload.
func (h *ProductsHandler) Add(c *gin.Context) {
	var in addProductInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Invalid product data.", errs))
		return
	}

	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" && strings.HasPrefix(c.ContentType(), "multipart/") {
		if fh, err := c.FormFile("image"); err == nil && fh != nil {
			f, err := fh.Open()
			if err != nil {
				middleware.Fail(c, apperr.Wrap(err))
				return
			}
			defer f.Close()

			res, err := h.Images.Put(c.Request.Context(), f, imagestore.PutInput{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
			})
			if err != nil {
				middleware.Fail(c, apperr.Wrap(err))
				return
			}
			log.Printf("admin: uploaded product image key=%s", res.Key)
			imageURL = res.URL
		}
	}

	p, err := h.Catalog.Add(c.Request.Context(), catalog.AddInput{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    imageURL,
		Stock:       in.Stock,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	render.JSONWithFlash(c, http.StatusCreated,
		gin.H{"product": p},
		view.FlashSuccess, "Product added successfully!")
}

// Delete handles DELETE /api/admin/products/:id. An uploaded image goes
// with its product; external image URLs are left alone.
func (h *ProductsHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	p, _ := h.Catalog.Get(id)

	if err := h.Catalog.Delete(c.Request.Context(), id); err != nil {
		middleware.Fail(c, err)
		return
	}

	if key, ok := h.Images.KeyFromURL(p.ImageURL); ok {
		if err := h.Images.Delete(c.Request.Context(), key); err != nil {
			log.Printf("admin: product %s deleted but image %s not removed: %v", id, key, err)
		}
	}

	render.JSONWithFlash(c, http.StatusOK, gin.H{},
		view.FlashSuccess, "Product deleted successfully.")
}

type setStockInput struct {
	Stock *int `json:"stock" binding:"required"`
}

// SetStock handles PUT /api/admin/products/:id/stock. Absolute set, not a
// delta; negatives are rejected.
func (h *ProductsHandler) SetStock(c *gin.Context) {
	var in setStockInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Invalid stock value.", errs))
		return
	}

	if err := h.Catalog.SetStock(c.Request.Context(), c.Param("id"), *in.Stock); err != nil {
		middleware.Fail(c, err)
		return
	}

	log.Printf("admin: stock set product=%s stock=%d", c.Param("id"), *in.Stock)
	render.JSONWithFlash(c, http.StatusOK, gin.H{},
		view.FlashSuccess, "Product stock updated.")
}
