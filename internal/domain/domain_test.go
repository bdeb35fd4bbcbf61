package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPost_ApplyPublishState(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-48 * time.Hour)
	later := now.Add(72 * time.Hour)

	t.Run("draft to published stamps now", func(t *testing.T) {
		p := &Post{}
		p.ApplyPublishState(true, nil, now)

		if !p.Published {
			t.Fatal("Published = false, want true")
		}
		if p.PublishedAt == nil || !p.PublishedAt.Equal(now) {
			t.Errorf("PublishedAt = %v, want %v", p.PublishedAt, now)
		}
	})

	t.Run("draft to published keeps earlier timestamp", func(t *testing.T) {
		p := &Post{PublishedAt: &earlier}
		p.ApplyPublishState(true, nil, now)

		if !p.PublishedAt.Equal(earlier) {
			t.Errorf("PublishedAt = %v, want %v", p.PublishedAt, earlier)
		}
	})

	t.Run("scheduled publish uses supplied time", func(t *testing.T) {
		p := &Post{}
		p.ApplyPublishState(true, &later, now)

		if p.PublishedAt == nil || !p.PublishedAt.Equal(later) {
			t.Errorf("PublishedAt = %v, want %v", p.PublishedAt, later)
		}
	})

	t.Run("unpublish retains published_at", func(t *testing.T) {
		p := &Post{Published: true, PublishedAt: &earlier}
		p.ApplyPublishState(false, nil, now)

		if p.Published {
			t.Error("Published = true, want false")
		}
		if p.PublishedAt == nil || !p.PublishedAt.Equal(earlier) {
			t.Errorf("PublishedAt = %v, want %v retained", p.PublishedAt, earlier)
		}
	})

	t.Run("draft ignores schedule", func(t *testing.T) {
		p := &Post{}
		p.ApplyPublishState(false, &later, now)

		if p.PublishedAt != nil {
			t.Errorf("PublishedAt = %v, want nil", p.PublishedAt)
		}
	})
}

func TestPost_IsVisibleAt(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		post Post
		want bool
	}{
		{"draft", Post{Published: false, PublishedAt: &past}, false},
		{"published in past", Post{Published: true, PublishedAt: &past}, true},
		{"published exactly now", Post{Published: true, PublishedAt: &now}, true},
		{"scheduled in future", Post{Published: true, PublishedAt: &future}, false},
		{"published without timestamp", Post{Published: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.post.IsVisibleAt(now); got != tt.want {
				t.Errorf("IsVisibleAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDisplayExcerpt(t *testing.T) {
	stored := "Hand written summary"
	blank := "   "

	t.Run("stored excerpt wins", func(t *testing.T) {
		p := &Post{Content: "<p>Body</p>", Excerpt: &stored}
		if got := DisplayExcerpt(p); got != stored {
			t.Errorf("DisplayExcerpt() = %q, want %q", got, stored)
		}
	})

	t.Run("blank excerpt falls back to content", func(t *testing.T) {
		p := &Post{Content: "<p>Hello <b>there</b></p>", Excerpt: &blank}
		if got := DisplayExcerpt(p); got != "Hello there" {
			t.Errorf("DisplayExcerpt() = %q, want %q", got, "Hello there")
		}
	})

	t.Run("long content is truncated", func(t *testing.T) {
		p := &Post{Content: strings.Repeat("é", 400)}
		got := DisplayExcerpt(p)

		if !strings.HasSuffix(got, "...") {
			t.Errorf("DisplayExcerpt() = %q, want trailing ...", got)
		}
		if n := len([]rune(strings.TrimSuffix(got, "..."))); n != ExcerptLength {
			t.Errorf("excerpt rune count = %d, want %d", n, ExcerptLength)
		}
	})
}

func TestPage_Offset(t *testing.T) {
	tests := []struct {
		page Page
		want int
	}{
		{Page{Number: 1, Size: 10}, 0},
		{Page{Number: 3, Size: 10}, 20},
		{Page{Number: 0, Size: 10}, 0},
		{Page{Number: -2, Size: 10}, 0},
	}

	for _, tt := range tests {
		if got := tt.page.Offset(); got != tt.want {
			t.Errorf("Page%+v.Offset() = %d, want %d", tt.page, got, tt.want)
		}
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"title":   "title_required",
		"content": "content_required",
	}}

	if !errors.Is(err, ErrValidationFailed) {
		t.Error("errors.Is(err, ErrValidationFailed) = false, want true")
	}
	want := "validation failed: content: content_required; title: title_required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
