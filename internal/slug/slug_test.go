package slug_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/slug"
)

// memoryLookup maps slug -> post id.
type memoryLookup struct {
	slugs map[string]string
	calls []string
	err   error
}

func newMemoryLookup(entries map[string]string) *memoryLookup {
	if entries == nil {
		entries = map[string]string{}
	}
	return &memoryLookup{slugs: entries}
}

func (m *memoryLookup) ExistsBySlug(_ context.Context, s, excludeID string) (bool, error) {
	m.calls = append(m.calls, s)
	if m.err != nil {
		return false, m.err
	}
	id, ok := m.slugs[s]
	if !ok {
		return false, nil
	}
	return excludeID == "" || id != excludeID, nil
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World!", "hello-world"},
		{"Hello, World!!", "hello-world"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"Crème Brûlée", "creme-brulee"},
		{"Go 1.24 --- Released", "go-1-24-released"},
		{"already-a-slug", "already-a-slug"},
		{"Straße", "strasse"},
		{"Ærø Øst", "aero-ost"},
		{"Привет мир", "privet-mir"},
		{"Łódź", "lodz"},
		{"ﬁnal ＡＢＣ", "final-abc"},
		{"日本語", "ri-ben-yu"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Slugify(tt.title))
		})
	}
}

func TestSlugify_TruncatesLongTitles(t *testing.T) {
	title := strings.Repeat("word ", 100)

	got := slug.Slugify(title)

	assert.LessOrEqual(t, len(got), slug.MaxBaseLength)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, strings.HasPrefix(got, "word-word"))
}

func TestAllocator_Allocate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns base when free", func(t *testing.T) {
		a := slug.NewAllocator(newMemoryLookup(nil))

		got, err := a.Allocate(ctx, "Hello World!", "")

		require.NoError(t, err)
		assert.Equal(t, "hello-world", got)
	})

	t.Run("probes ascending suffixes", func(t *testing.T) {
		lookup := newMemoryLookup(map[string]string{
			"hello-world":   "p1",
			"hello-world-1": "p2",
		})
		a := slug.NewAllocator(lookup)

		got, err := a.Allocate(ctx, "Hello, World!!", "")

		require.NoError(t, err)
		assert.Equal(t, "hello-world-2", got)
		assert.Equal(t, []string{"hello-world", "hello-world-1", "hello-world-2"}, lookup.calls)
	})

	t.Run("fills lowest free suffix", func(t *testing.T) {
		a := slug.NewAllocator(newMemoryLookup(map[string]string{
			"hello-world":   "p1",
			"hello-world-2": "p3",
		}))

		got, err := a.Allocate(ctx, "Hello World", "")

		require.NoError(t, err)
		assert.Equal(t, "hello-world-1", got)
	})

	t.Run("ignores excluded post", func(t *testing.T) {
		a := slug.NewAllocator(newMemoryLookup(map[string]string{"foo": "p1"}))

		got, err := a.Allocate(ctx, "Foo", "p1")

		require.NoError(t, err)
		assert.Equal(t, "foo", got)
	})

	t.Run("empty transliteration falls back to placeholder", func(t *testing.T) {
		a := slug.NewAllocator(newMemoryLookup(map[string]string{"post": "p1"}))

		got, err := a.Allocate(ctx, "!!!", "")

		require.NoError(t, err)
		assert.Equal(t, "post-1", got)
	})

	t.Run("repeated calls are stable", func(t *testing.T) {
		a := slug.NewAllocator(newMemoryLookup(map[string]string{"foo": "p1"}))

		first, err := a.Allocate(ctx, "Foo", "")
		require.NoError(t, err)
		second, err := a.Allocate(ctx, "Foo", "")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		lookup := newMemoryLookup(nil)
		lookup.err = errors.New("connection reset")
		a := slug.NewAllocator(lookup)

		_, err := a.Allocate(ctx, "Foo", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, lookup.err)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		a := slug.NewAllocator(newMemoryLookup(nil))

		_, err := a.Allocate(cctx, "Foo", "")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
