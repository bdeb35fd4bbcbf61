// Package policy decides who may read and change posts.
package policy

import (
	"time"

	"blog-service/internal/domain"
)

// PostPolicy authorizes post access for an acting user. An empty actorID
// means an anonymous reader.
type PostPolicy struct{}

// NewPostPolicy creates a PostPolicy.
func NewPostPolicy() *PostPolicy {
	return &PostPolicy{}
}

// CanView reports whether actorID may read post at now. Authors always see
// their own posts; everyone else only sees posts that are published and due.
func (PostPolicy) CanView(actorID string, post *domain.Post, now time.Time) bool {
	if post == nil {
		return false
	}
	if isAuthor(actorID, post) {
		return true
	}
	return post.IsVisibleAt(now)
}

// CanUpdate reports whether actorID may edit post.
func (PostPolicy) CanUpdate(actorID string, post *domain.Post) bool {
	return isAuthor(actorID, post)
}

// CanDelete reports whether actorID may delete post.
func (PostPolicy) CanDelete(actorID string, post *domain.Post) bool {
	return isAuthor(actorID, post)
}

func isAuthor(actorID string, post *domain.Post) bool {
	return post != nil && actorID != "" && post.AuthorID == actorID
}
