package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"geministore.com/app/internal/modules/assistant"
	"geministore.com/app/internal/modules/catalog"
	"geministore.com/app/internal/store"
)

// seedcatalog writes a product snapshot without starting the server.
// Useful for resetting a demo environment.
func main() {
	force := flag.Bool("force", false, "overwrite a non-empty catalog")
	fallback := flag.Bool("fallback", false, "skip generation, write the sample list")
	flag.Parse()

	_ = godotenv.Load()
	ctx := context.Background()

	persisted, err := store.FromEnv(ctx)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	catalogStore := catalog.NewStore(persisted.Store)
	if err := catalogStore.Load(ctx); err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}

	if !catalogStore.Empty() && !*force {
		fmt.Fprintln(os.Stderr, "catalog is not empty; use -force to overwrite")
		os.Exit(1)
	}

	var products []catalog.Product
	notice := ""
	if *fallback {
		products = catalog.Fallback()
	} else {
		svc := assistant.NewService(assistant.ClientFromEnv())
		products, notice = svc.GenerateCatalog(ctx)
	}

	if err := catalogStore.Replace(ctx, products); err != nil {
		log.Fatalf("catalog write failed: %v", err)
	}

	fmt.Printf("seeded %d products (driver=%s)\n", len(products), persisted.Driver)
	if notice != "" {
		fmt.Println(notice)
	}
}
