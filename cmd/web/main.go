package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	apphttp "geministore.com/app/internal/http"
	"geministore.com/app/internal/http/flash"
	"geministore.com/app/internal/http/sessioncookie"
	"geministore.com/app/internal/imagestore"
	"geministore.com/app/internal/modules/accounts"
	"geministore.com/app/internal/modules/assistant"
	"geministore.com/app/internal/modules/cart"
	"geministore.com/app/internal/modules/catalog"
	"geministore.com/app/internal/modules/checkout"
	"geministore.com/app/internal/store"
)

func main() {
	// .env is optional; prod uses real env vars
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		log.Fatal("COOKIE_SECRET environment variable is required")
	}

	ctx := context.Background()

	persisted, err := store.FromEnv(ctx)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}
	logger.Info("store ready", "driver", persisted.Driver)

	images, err := imagestore.FromEnv(ctx)
	if err != nil {
		log.Fatalf("image store init failed: %v", err)
	}
	logger.Info("image store ready", "driver", images.Driver)

	catalogStore := catalog.NewStore(persisted.Store)
	if err := catalogStore.Load(ctx); err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}

	accountStore := accounts.NewStore(persisted.Store)
	if err := accountStore.Load(ctx); err != nil {
		log.Fatalf("accounts load failed: %v", err)
	}

	assistantSvc := assistant.NewService(assistant.ClientFromEnv())
	logger.Info("assistant", "enabled", assistantSvc.Enabled())

	// An empty catalog gets seeded once: generated when the assistant is
	// enabled, the sample list otherwise.
	if catalogStore.Empty() {
		products, notice := assistantSvc.GenerateCatalog(ctx)
		if err := catalogStore.Replace(ctx, products); err != nil {
			log.Fatalf("catalog seed failed: %v", err)
		}
		logger.Info("catalog seeded", "count", len(products), "notice", notice)
	}

	accountsSvc := accounts.NewService(accountStore, accounts.NewRegistry())
	cartSvc := cart.NewService(catalogStore)
	finalizer := checkout.NewFinalizer(catalogStore)

	secure := os.Getenv("COOKIE_SECURE") == "true"
	flashCodec := flash.NewCodec([]byte(secret), "gs_flash", secure)
	sessionCodec := sessioncookie.New([]byte(secret), "gs_session", secure)

	staticDir := ""
	if images.Driver == "local" {
		staticDir = envOr("IMAGE_DIR", "./data/images")
	}

	r := apphttp.NewRouter(apphttp.Deps{
		Logger:         logger,
		Catalog:        catalogStore,
		CartSvc:        cartSvc,
		Finalizer:      finalizer,
		Accounts:       accountsSvc,
		Assistant:      assistantSvc,
		Images:         images.Store,
		Flash:          flashCodec,
		SessionCookie:  sessionCodec,
		StaticImageDir: staticDir,
	})

	addr := envOr("ADDR", ":8080")
	logger.Info("listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
