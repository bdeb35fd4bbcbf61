package service

import (
	"context"

	"blog-service/internal/domain"
)

// PostServiceInterface defines the interface for post operations.
// Used for dependency injection and mocking in tests.
type PostServiceInterface interface {
	// CreatePost creates a post authored by actorID.
	CreatePost(ctx context.Context, actorID string, fields domain.PostFields, image *domain.ImageUpload) (*domain.Post, error)
	// UpdatePost updates a post owned by actorID.
	UpdatePost(ctx context.Context, actorID, postID string, fields domain.PostFields, image *domain.ImageUpload) (*domain.Post, error)
	// DeletePost deletes a post owned by actorID.
	DeletePost(ctx context.Context, actorID, postID string) error
	// GetPost returns a post by slug if actorID may see it.
	GetPost(ctx context.Context, actorID, slug string) (*domain.Post, error)
	// ListPublished returns a page of public posts.
	ListPublished(ctx context.Context, page int) (*domain.PostList, error)
	// ListMine returns a page of the actor's posts.
	ListMine(ctx context.Context, actorID string, page int) (*domain.PostList, error)
	// ImageURL resolves a stored image key to a URL.
	ImageURL(key string) string
}

var _ PostServiceInterface = (*PostService)(nil)
