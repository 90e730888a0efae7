package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File keeps one JSON file per key under BaseDir.
type File struct {
	BaseDir string
}

func NewFile(baseDir string) *File {
	return &File{BaseDir: baseDir}
}

func (f *File) Load(ctx context.Context, key string) ([]byte, error) {
	_ = ctx

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (f *File) Save(ctx context.Context, key string, data []byte) error {
	_ = ctx

	if err := os.MkdirAll(f.BaseDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path(key), data, 0o644)
}

func (f *File) path(key string) string {
	// keys are fixed identifiers, not user input
	return filepath.Join(f.BaseDir, filepath.Base(key)+".json")
}

func (f *File) String() string { return fmt.Sprintf("file(%s)", f.BaseDir) }
