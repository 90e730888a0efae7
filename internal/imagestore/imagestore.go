package imagestore

import (
	"context"
	"io"
	"strings"
)

// PutInput describes an uploaded product image.
type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

// Store holds product images. Only the admin add-product flow writes here;
// the catalog only ever sees the resulting public URL.
type Store interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL maps a catalog image URL back to the stored key. False
	// means the URL is external and must not be deleted.
	KeyFromURL(url string) (string, bool)
}

// imageExt maps an upload filename to an accepted image extension; anything
// else is stored extensionless rather than rejected.
func imageExt(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	switch ext := strings.ToLower(filename[i:]); ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return ext
	default:
		return ""
	}
}
