package blobstore

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostImageKey(t *testing.T) {
	key := PostImageKey("post-1", "Holiday.JPG")

	assert.True(t, strings.HasPrefix(key, "posts/post-1/"), key)
	assert.True(t, strings.HasSuffix(key, ".jpg"), key)
	assert.NotEqual(t, key, PostImageKey("post-1", "Holiday.JPG"), "keys must not repeat")

	assert.Empty(t, filepath.Ext(PostImageKey("post-1", "no-extension")))
}

func TestCleanKey(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{"posts/a/b.png", "posts/a/b.png", false},
		{"/posts/a/b.png", "posts/a/b.png", false},
		{"", "", true},
		{"../etc/passwd", "", true},
		{"posts/../../x", "", true},
		{`posts\a.png`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := cleanKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewLocalStore(root, "http://localhost:8080/storage/")
	require.NoError(t, err)

	t.Run("put then delete", func(t *testing.T) {
		key, err := store.Put(ctx, "posts/p1/image.png", strings.NewReader("png-bytes"), 9, "image/png")
		require.NoError(t, err)
		assert.Equal(t, "posts/p1/image.png", key)

		data, err := os.ReadFile(filepath.Join(root, "posts", "p1", "image.png"))
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))

		require.NoError(t, store.Delete(ctx, key))
		_, err = os.Stat(filepath.Join(root, "posts", "p1", "image.png"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("delete missing key is not an error", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "posts/missing/x.png"))
	})

	t.Run("rejects traversal", func(t *testing.T) {
		_, err := store.Put(ctx, "../outside.png", strings.NewReader("x"), 1, "image/png")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("failed copy leaves nothing behind", func(t *testing.T) {
		_, err := store.Put(ctx, "posts/p2/broken.png", io.MultiReader(strings.NewReader("abc"), errReader{}), 3, "image/png")
		require.Error(t, err)

		_, statErr := os.Stat(filepath.Join(root, "posts", "p2", "broken.png"))
		assert.True(t, os.IsNotExist(statErr))

		entries, err := os.ReadDir(filepath.Join(root, "posts", "p2"))
		require.NoError(t, err)
		assert.Empty(t, entries, "temp file should be removed")
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Put(cctx, "posts/p3/x.png", strings.NewReader("x"), 1, "image/png")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("url for key", func(t *testing.T) {
		assert.Equal(t, "http://localhost:8080/storage/posts/p1/image.png", store.URLFor("posts/p1/image.png"))
	})
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestCOSStore(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	objects := map[string][]byte{}
	failPuts := false

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		key := strings.TrimPrefix(r.URL.Path, "/")
		switch r.Method {
		case http.MethodPut:
			if failPuts {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			body, _ := io.ReadAll(r.Body)
			objects[key] = body
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			delete(objects, key)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	store := newCOSStore(u, "https://cdn.example.com", "id", "key")

	t.Run("put and delete object", func(t *testing.T) {
		content := []byte("gif-bytes")
		key, err := store.Put(ctx, "posts/p1/a.gif", bytes.NewReader(content), int64(len(content)), "image/gif")
		require.NoError(t, err)
		assert.Equal(t, "posts/p1/a.gif", key)

		mu.Lock()
		assert.Equal(t, content, objects["posts/p1/a.gif"])
		mu.Unlock()

		require.NoError(t, store.Delete(ctx, key))
		mu.Lock()
		assert.NotContains(t, objects, "posts/p1/a.gif")
		mu.Unlock()
	})

	t.Run("server error fails put", func(t *testing.T) {
		mu.Lock()
		failPuts = true
		mu.Unlock()
		defer func() {
			mu.Lock()
			failPuts = false
			mu.Unlock()
		}()

		_, err := store.Put(ctx, "posts/p1/b.gif", strings.NewReader("x"), 1, "image/gif")
		assert.Error(t, err)
	})

	t.Run("url uses public base", func(t *testing.T) {
		assert.Equal(t, "https://cdn.example.com/posts/p1/a.gif", store.URLFor("posts/p1/a.gif"))
	})

	t.Run("incomplete config", func(t *testing.T) {
		_, err := NewCOSStore(COSConfig{BucketName: "b"})
		assert.Error(t, err)
	})
}
