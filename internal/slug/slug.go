// Package slug derives URL-safe post identifiers from titles and resolves
// collisions against stored posts.
package slug

import (
	"context"
	"fmt"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"

	"blog-service/internal/metrics"
)

const (
	// Placeholder is the base used when a title has no ASCII-representable characters.
	Placeholder = "post"

	// MaxBaseLength bounds the base so a numeric suffix still fits the slug column.
	MaxBaseLength = 200
)

// Lookup reports whether a slug is taken by any post other than excludeID.
type Lookup interface {
	ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error)
}

// Slugify converts a title into a URL-safe slug.
//
// The title is transliterated to ASCII, every run of characters outside
// [a-z0-9] collapses into a single hyphen, and leading or trailing hyphens
// are trimmed. The result may be empty.
//
//	Slugify("Hello World!")   // "hello-world"
//	Slugify("Crème Brûlée")   // "creme-brulee"
//	Slugify("Straße")         // "strasse"
//	Slugify("Привет мир")     // "privet-mir"
//	Slugify("!!!")            // ""
func Slugify(title string) string {
	folded := unidecode.Unidecode(norm.NFKC.String(title))

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	s := b.String()
	if len(s) > MaxBaseLength {
		s = strings.TrimRight(s[:MaxBaseLength], "-")
	}
	return s
}

// Allocator hands out slugs that are unused at the moment of the check.
type Allocator struct {
	lookup Lookup
}

// NewAllocator creates an Allocator backed by lookup. Pass a transaction-bound
// lookup so the probe observes the same snapshot as the following write.
func NewAllocator(lookup Lookup) *Allocator {
	return &Allocator{lookup: lookup}
}

// Allocate returns the first free candidate among base, base-1, base-2, ...
// Posts with id excludeID are ignored, so renaming a post never collides with
// its own current slug.
func (a *Allocator) Allocate(ctx context.Context, title, excludeID string) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = Placeholder
	}

	candidate := base
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		metrics.SlugProbesTotal.Inc()
		taken, err := a.lookup.ExistsBySlug(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
