package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"geministore.com/app/internal/http/middleware"
	"geministore.com/app/internal/http/render"
	"geministore.com/app/internal/http/validation"
	"geministore.com/app/internal/modules/checkout"
	"geministore.com/app/internal/shared/apperr"
	"geministore.com/app/pkg/view"
)

type CheckoutHandler struct {
	Finalizer *checkout.Finalizer
}

func NewCheckoutHandler(f *checkout.Finalizer) *CheckoutHandler {
	return &CheckoutHandler{Finalizer: f}
}

type checkoutInput struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required,phone"`
	AddressLine1  string `json:"addressLine1" binding:"required"`
	City          string `json:"city" binding:"required"`
	Pincode       string `json:"pincode" binding:"required,pincode"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=creditCard paypal"`
}

// Post handles POST /api/checkout. The payment method is stored verbatim;
// nothing is charged.
func (h *CheckoutHandler) Post(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	var in checkoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Invalid request data.", errs))
		return
	}

	order, err := h.Finalizer.Confirm(c.Request.Context(), sess.Cart, checkout.CheckoutDetails{
		Name:          in.Name,
		Phone:         in.Phone,
		AddressLine1:  in.AddressLine1,
		City:          in.City,
		Pincode:       in.Pincode,
		PaymentMethod: in.PaymentMethod,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	// the browse filter resets together with the cart after a confirmed order
	sess.SetFilter("", "")

	render.JSONWithFlash(c, http.StatusCreated,
		gin.H{"order": orderSummary(order)},
		view.FlashSuccess,
		fmt.Sprintf("Order #%s placed successfully for $%.2f. Thank you, %s!", order.ID, order.GrandTotal, order.Details.Name))
}

func orderSummary(o checkout.Order) view.OrderSummary {
	items := make([]view.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, view.OrderItem{
			ProductID: it.ID,
			Name:      it.Name,
			Category:  it.Category,
			ImageURL:  it.ImageURL,
			Price:     it.Price,
			Quantity:  it.Quantity,
			LineTotal: it.Price * float64(it.Quantity),
		})
	}
	return view.OrderSummary{
		ID:    o.ID,
		Items: items,
		Details: view.OrderDetails{
			Name:          o.Details.Name,
			Phone:         o.Details.Phone,
			AddressLine1:  o.Details.AddressLine1,
			City:          o.Details.City,
			Pincode:       o.Details.Pincode,
			PaymentMethod: o.Details.PaymentMethod,
		},
		Subtotal:    o.Subtotal,
		GSTAmount:   o.GSTAmount,
		ShippingFee: o.ShippingFee,
		GrandTotal:  o.GrandTotal,
		OrderDate:   o.OrderDate,
		Status:      string(o.Status),
	}
}
