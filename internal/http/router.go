package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"geministore.com/app/internal/http/flash"
	"geministore.com/app/internal/http/handlers"
	"geministore.com/app/internal/http/handlers/admin"
	"geministore.com/app/internal/http/middleware"
	"geministore.com/app/internal/http/sessioncookie"
	"geministore.com/app/internal/http/validation"
	"geministore.com/app/internal/imagestore"
	"geministore.com/app/internal/modules/accounts"
	"geministore.com/app/internal/modules/assistant"
	"geministore.com/app/internal/modules/cart"
	"geministore.com/app/internal/modules/catalog"
	"geministore.com/app/internal/modules/checkout"
)

type Deps struct {
	Logger    *slog.Logger
	Catalog   *catalog.Store
	CartSvc   *cart.Service
	Finalizer *checkout.Finalizer
	Accounts  *accounts.Service
	Assistant *assistant.Service
	Images    imagestore.Store

	Flash         *flash.Codec
	SessionCookie *sessioncookie.Codec

	// StaticImageDir, when set, is served at /images for the local driver.
	StaticImageDir string
}

func NewRouter(d Deps) *gin.Engine {
	validation.RegisterCustom()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.ErrorHandler(d.Logger),
		middleware.FlashMiddleware(d.Flash),
		middleware.SessionMiddleware(d.SessionCookie, d.Accounts.Registry()),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if d.StaticImageDir != "" {
		r.Static("/images", d.StaticImageDir)
	}

	products := handlers.NewProductsHandler(d.Catalog)
	cartH := handlers.NewCartHandler(d.CartSvc)
	checkoutH := handlers.NewCheckoutHandler(d.Finalizer)
	auth := handlers.NewAuthHandler(d.Accounts, d.SessionCookie, d.Flash)
	chat := handlers.NewChatHandler(d.Assistant)
	adminProducts := admin.NewProductsHandler(d.Catalog, d.Images)

	api := r.Group("/api")
	{
		api.GET("/products", products.List)
		api.GET("/categories", products.Categories)

		api.POST("/auth/login", auth.Login)
		api.POST("/auth/otp", auth.VerifyOTP)
		api.POST("/auth/register", auth.Register)
		api.POST("/auth/logout", auth.Logout)

		api.GET("/chat", chat.Greeting)
		api.POST("/chat", chat.Send)

		authed := api.Group("", middleware.RequireAuth())
		{
			authed.GET("/cart", cartH.Get)
			authed.POST("/cart/items", cartH.Add)
			authed.PATCH("/cart/items/:id", cartH.Update)
			authed.DELETE("/cart/items/:id", cartH.Remove)
			authed.POST("/checkout", checkoutH.Post)
		}

		adm := api.Group("/admin", middleware.RequireAdmin())
		{
			adm.GET("/products", adminProducts.List)
			adm.POST("/products", adminProducts.Add)
			adm.DELETE("/products/:id", adminProducts.Delete)
			adm.PUT("/products/:id/stock", adminProducts.SetStock)
		}
	}

	return r
}
