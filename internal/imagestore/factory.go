package imagestore

import (
	"context"
	"fmt"
	"os"
)

type FactoryResult struct {
	Driver string
	Store  Store
}

// FromEnv selects the image driver from IMAGE_DRIVER (local by default).
func FromEnv(ctx context.Context) (FactoryResult, error) {
	driver := os.Getenv("IMAGE_DRIVER")
	if driver == "" {
		driver = "local"
	}

	switch driver {
	case "local":
		baseDir := envOr("IMAGE_DIR", "./data/images")
		urlPrefix := envOr("IMAGE_URL_PREFIX", "/images")
		return FactoryResult{Driver: "local", Store: NewLocal(baseDir, urlPrefix)}, nil

	case "s3":
		region := os.Getenv("S3_REGION")
		bucket := os.Getenv("S3_BUCKET")
		publicBase := os.Getenv("S3_PUBLIC_BASE_URL")
		prefix := envOr("S3_PREFIX", "images")
		if region == "" || bucket == "" || publicBase == "" {
			return FactoryResult{}, fmt.Errorf("S3 config missing: S3_REGION, S3_BUCKET, S3_PUBLIC_BASE_URL required")
		}
		s, err := NewS3(ctx, S3Config{
			Region:        region,
			Bucket:        bucket,
			Prefix:        prefix,
			PublicBaseURL: publicBase,
		})
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "s3", Store: s}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown IMAGE_DRIVER: %s", driver)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
