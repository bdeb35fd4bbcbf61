package domain

import (
	"io"
	"time"
)

// Post represents a blog post entity in the system.
type Post struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       *string    `json:"excerpt,omitempty"`
	FeaturedImage *string    `json:"featured_image,omitempty"`
	Published     bool       `json:"published"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	AuthorID      string     `json:"author_id"`
	AuthorName    string     `json:"author_name,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PostFields holds the author-editable fields of a post.
type PostFields struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Excerpt   *string `json:"excerpt,omitempty"`
	Published bool    `json:"published"`
	// PublishAt schedules publication. Ignored while Published is false.
	PublishAt *time.Time `json:"publish_at,omitempty"`
}

// ImageUpload is an uploaded featured image waiting to be stored.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// IsVisibleAt reports whether the post is publicly visible at t.
// Scheduled posts become visible once their publish time has passed.
func (p *Post) IsVisibleAt(t time.Time) bool {
	if !p.Published {
		return false
	}
	return p.PublishedAt == nil || !p.PublishedAt.After(t)
}

// ApplyPublishState moves the post between draft and published.
// Publishing stamps PublishedAt (or the scheduled time); unpublishing keeps
// the previous PublishedAt so re-publishing later does not reorder history.
func (p *Post) ApplyPublishState(published bool, publishAt *time.Time, now time.Time) {
	p.Published = published
	if !published {
		return
	}
	switch {
	case publishAt != nil:
		t := *publishAt
		p.PublishedAt = &t
	case p.PublishedAt == nil:
		t := now
		p.PublishedAt = &t
	}
}

// Page describes a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// PostList is a page of posts with the total count across all pages.
type PostList struct {
	Posts []Post `json:"posts"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
}
