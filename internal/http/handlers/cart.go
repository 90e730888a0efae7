package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"geministore.com/app/internal/http/middleware"
	"geministore.com/app/internal/http/render"
	"geministore.com/app/internal/http/validation"
	"geministore.com/app/internal/modules/cart"
	"geministore.com/app/internal/shared/apperr"
	"geministore.com/app/pkg/view"
)

// CartHandler mutates the session cart. Every route behind it requires a
// login; the cart lives on the session, not in a cookie.
type CartHandler struct {
	CartSvc *cart.Service
}

func NewCartHandler(svc *cart.Service) *CartHandler {
	return &CartHandler{CartSvc: svc}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	render.JSON(c, http.StatusOK, gin.H{"cart": h.CartSvc.Page(sess.Cart)})
}

type cartAddInput struct {
	ProductID string `json:"productId" binding:"required"`
}

// Add handles POST /api/cart/items. One unit per call, like the button.
func (h *CartHandler) Add(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	var in cartAddInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Invalid request data.", errs))
		return
	}

	p, err := h.CartSvc.Add(sess.Cart, in.ProductID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	render.JSONWithFlash(c, http.StatusOK,
		gin.H{"cart": h.CartSvc.Page(sess.Cart)},
		view.FlashSuccess, fmt.Sprintf("%s added to cart!", p.Name))
}

type cartUpdateInput struct {
	Quantity int `json:"quantity"`
}

// Update handles PATCH /api/cart/items/:id. Quantities above stock are
// clamped, zero and below removes the line.
func (h *CartHandler) Update(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	var in cartUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Invalid request data.", errs))
		return
	}

	res := h.CartSvc.SetQuantity(sess.Cart, c.Param("id"), in.Quantity)
	payload := gin.H{"cart": h.CartSvc.Page(sess.Cart)}

	if res.Message != "" {
		render.JSONWithFlash(c, http.StatusOK, payload, view.FlashError, res.Message)
		return
	}
	render.JSON(c, http.StatusOK, payload)
}

// Remove handles DELETE /api/cart/items/:id. Always succeeds.
func (h *CartHandler) Remove(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	h.CartSvc.Remove(sess.Cart, c.Param("id"))
	render.JSONWithFlash(c, http.StatusOK,
		gin.H{"cart": h.CartSvc.Page(sess.Cart)},
		view.FlashInfo, "Item removed from cart.")
}
