package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"blog-service/internal/blobstore"
	"blog-service/internal/domain"
	"blog-service/internal/logger"
	"blog-service/internal/policy"
	"blog-service/internal/repository"
)

// PostService is the caller-facing post API. It resolves the acting user's
// permissions and delegates writes to PostWorkflow.
type PostService struct {
	repo     repository.PostRepository
	workflow *PostWorkflow
	policy   *policy.PostPolicy
	blobs    blobstore.BlobStore
	pageSize int
	now      func() time.Time
}

// NewPostService creates a new PostService.
func NewPostService(
	repo repository.PostRepository,
	workflow *PostWorkflow,
	p *policy.PostPolicy,
	blobs blobstore.BlobStore,
	pageSize int,
) *PostService {
	if pageSize < 1 {
		pageSize = 10
	}
	return &PostService{
		repo:     repo,
		workflow: workflow,
		policy:   p,
		blobs:    blobs,
		pageSize: pageSize,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source. Used by tests.
func (s *PostService) WithClock(now func() time.Time) *PostService {
	s.now = now
	return s
}

// CreatePost creates a post authored by actorID.
func (s *PostService) CreatePost(ctx context.Context, actorID string, fields domain.PostFields, image *domain.ImageUpload) (*domain.Post, error) {
	if actorID == "" {
		return nil, domain.ErrForbidden
	}
	return s.workflow.Create(ctx, actorID, fields, image)
}

// UpdatePost updates a post owned by actorID.
func (s *PostService) UpdatePost(ctx context.Context, actorID, postID string, fields domain.PostFields, image *domain.ImageUpload) (*domain.Post, error) {
	if _, err := s.authorize(ctx, actorID, postID, s.policy.CanUpdate); err != nil {
		return nil, err
	}
	return s.workflow.Update(ctx, postID, fields, image)
}

// DeletePost deletes a post owned by actorID.
func (s *PostService) DeletePost(ctx context.Context, actorID, postID string) error {
	if _, err := s.authorize(ctx, actorID, postID, s.policy.CanDelete); err != nil {
		return err
	}
	return s.workflow.Delete(ctx, postID)
}

// GetPost returns the post with the given slug if actorID may see it.
// Hidden posts are reported as not found.
func (s *PostService) GetPost(ctx context.Context, actorID, slug string) (*domain.Post, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, s.readFailed(ctx, "get post", err)
	}
	if post == nil || !s.policy.CanView(actorID, post, s.now()) {
		return nil, domain.ErrNotFound
	}
	return post, nil
}

// ListPublished returns one page of publicly visible posts.
func (s *PostService) ListPublished(ctx context.Context, page int) (*domain.PostList, error) {
	p := s.page(page)
	posts, total, err := s.repo.ListPublished(ctx, s.now(), p)
	if err != nil {
		return nil, s.readFailed(ctx, "list published posts", err)
	}
	return &domain.PostList{Posts: posts, Total: total, Page: p.Number, Size: p.Size}, nil
}

// ListMine returns one page of the actor's own posts, drafts included.
func (s *PostService) ListMine(ctx context.Context, actorID string, page int) (*domain.PostList, error) {
	if actorID == "" {
		return nil, domain.ErrForbidden
	}
	p := s.page(page)
	posts, total, err := s.repo.ListByAuthor(ctx, actorID, p)
	if err != nil {
		return nil, s.readFailed(ctx, "list author posts", err)
	}
	return &domain.PostList{Posts: posts, Total: total, Page: p.Number, Size: p.Size}, nil
}

// ImageURL returns the public URL for a stored image key.
func (s *PostService) ImageURL(key string) string {
	return s.blobs.URLFor(key)
}

func (s *PostService) authorize(ctx context.Context, actorID, postID string, allowed func(string, *domain.Post) bool) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, s.readFailed(ctx, "get post", err)
	}
	if post == nil {
		return nil, domain.ErrNotFound
	}
	if !allowed(actorID, post) {
		logger.WarnContext(ctx, "Post access denied",
			slog.String("post_id", postID),
			slog.String("actor_id", actorID))
		return nil, domain.ErrForbidden
	}
	return post, nil
}

func (s *PostService) page(number int) domain.Page {
	if number < 1 {
		number = 1
	}
	return domain.Page{Number: number, Size: s.pageSize}
}

func (s *PostService) readFailed(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	logger.ErrorContext(ctx, "Post read failed", slog.String("operation", op), slog.String("error", err.Error()))
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}
