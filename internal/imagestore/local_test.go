package imagestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPutAndDelete(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/images/")
	ctx := context.Background()

	res, err := l.Put(ctx, strings.NewReader("fake-png-bytes"), PutInput{
		Filename:    "Hero Shot.PNG",
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.Key, ".png"))
	assert.True(t, strings.HasPrefix(res.URL, "/images/"))
	assert.False(t, strings.Contains(res.URL, "//"+res.Key), "prefix slash must not double")

	data, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))

	require.NoError(t, l.Delete(ctx, res.Key))
	_, err = os.ReadFile(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalPutUnknownExtension(t *testing.T) {
	l := NewLocal(t.TempDir(), "/images")
	res, err := l.Put(context.Background(), strings.NewReader("x"), PutInput{Filename: "payload.exe"})
	require.NoError(t, err)
	assert.NotContains(t, res.Key, ".")
}

func TestLocalDeleteIgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/images")
	ctx := context.Background()

	res, err := l.Put(ctx, strings.NewReader("x"), PutInput{Filename: "a.png"})
	require.NoError(t, err)

	// a traversal key resolves to its base name inside the dir
	require.NoError(t, l.Delete(ctx, "../../"+res.Key))
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalKeyFromURL(t *testing.T) {
	l := NewLocal(t.TempDir(), "/images/")

	res, err := l.Put(context.Background(), strings.NewReader("x"), PutInput{Filename: "a.png"})
	require.NoError(t, err)

	key, ok := l.KeyFromURL(res.URL)
	require.True(t, ok)
	assert.Equal(t, res.Key, key)

	// external URLs are not ours to delete
	_, ok = l.KeyFromURL("https://cdn.example.com/images/other.png")
	assert.False(t, ok)
	_, ok = l.KeyFromURL("https://placehold.co/300x200?text=Quantum+Mouse")
	assert.False(t, ok)
	_, ok = l.KeyFromURL("/images/")
	assert.False(t, ok)
}

func TestImageExt(t *testing.T) {
	assert.Equal(t, ".jpg", imageExt("photo.JPG"))
	assert.Equal(t, ".webp", imageExt("a.b.webp"))
	assert.Equal(t, "", imageExt("noext"))
	assert.Equal(t, "", imageExt("script.sh"))
}
