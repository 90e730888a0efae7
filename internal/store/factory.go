package store

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

type FactoryResult struct {
	Driver string
	Store  Store
}

func FromEnv(ctx context.Context) (FactoryResult, error) {
	driver := os.Getenv("STORE_DRIVER")
	if driver == "" {
		driver = "file"
	}

	switch driver {
	case "file":
		baseDir := envOr("STORE_PATH", "./data")
		return FactoryResult{Driver: "file", Store: NewFile(baseDir)}, nil

	case "memory":
		return FactoryResult{Driver: "memory", Store: NewMemory()}, nil

	case "redis":
		addr := envOr("REDIS_ADDR", "")
		if addr == "" {
			return FactoryResult{}, fmt.Errorf("redis config missing: REDIS_ADDR required")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return FactoryResult{}, fmt.Errorf("redis ping: %w", err)
		}
		return FactoryResult{Driver: "redis", Store: NewRedis(client, envOr("REDIS_PREFIX", "geministore:"))}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown STORE_DRIVER: %s", driver)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
