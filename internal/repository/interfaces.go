package repository

import (
	"context"
	"errors"
	"time"

	"blog-service/internal/domain"
)

// ErrSlugConflict is returned by Insert and Update when another post already
// holds the slug. Callers re-allocate and retry.
var ErrSlugConflict = errors.New("slug already taken")

// PostQueries are the post operations available both on the repository and
// inside a transaction.
type PostQueries interface {
	// FindByID returns nil, nil when the post does not exist.
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error)
	Insert(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
}

// PostTx is a unit of work over posts. Rollback after Commit is a no-op.
type PostTx interface {
	PostQueries
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// PostRepository defines methods for post data access.
type PostRepository interface {
	PostQueries
	Begin(ctx context.Context) (PostTx, error)
	// FindBySlug returns nil, nil when the post does not exist.
	FindBySlug(ctx context.Context, slug string) (*domain.Post, error)
	// ListPublished returns posts visible at now, newest publication first.
	ListPublished(ctx context.Context, now time.Time, page domain.Page) ([]domain.Post, int, error)
	// ListByAuthor returns every post of the author, drafts included.
	ListByAuthor(ctx context.Context, authorID string, page domain.Page) ([]domain.Post, int, error)
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
}
