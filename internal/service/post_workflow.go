package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-service/internal/blobstore"
	"blog-service/internal/domain"
	"blog-service/internal/events"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/repository"
	"blog-service/internal/slug"
	"blog-service/internal/validator"
)

const (
	// maxSlugAttempts bounds how often a write is retried after another
	// writer took the allocated slug first.
	maxSlugAttempts = 3

	// DefaultCleanupTimeout bounds best-effort blob deletion and event
	// publishing that run after the caller's context may be gone.
	DefaultCleanupTimeout = 10 * time.Second
)

// Operation names used in logs and metrics.
const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// Orphan reasons used in metrics.
const (
	orphanCleanupFailed  = "cleanup_failed"
	orphanCommitUnknown  = "commit_unknown"
	orphanReplacedFailed = "replaced_delete_failed"
	orphanDeletedFailed  = "post_deleted_delete_failed"
)

// commitError marks a failure of Commit itself. The transaction may or may
// not have been applied, so blobs referenced by it must be kept.
type commitError struct {
	err error
}

func (e *commitError) Error() string { return e.err.Error() }
func (e *commitError) Unwrap() error { return e.err }

// PostWorkflow writes posts together with their featured image. The row
// never references a blob that does not exist; a blob without a row is
// tolerated and counted.
type PostWorkflow struct {
	repo      repository.PostRepository
	blobs     blobstore.BlobStore
	validator *validator.Validator
	publisher events.Publisher

	now            func() time.Time
	cleanupTimeout time.Duration
}

// NewPostWorkflow creates a new PostWorkflow. A nil publisher disables events.
func NewPostWorkflow(
	repo repository.PostRepository,
	blobs blobstore.BlobStore,
	v *validator.Validator,
	publisher events.Publisher,
) *PostWorkflow {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &PostWorkflow{
		repo:           repo,
		blobs:          blobs,
		validator:      v,
		publisher:      publisher,
		now:            func() time.Time { return time.Now().UTC() },
		cleanupTimeout: DefaultCleanupTimeout,
	}
}

// WithClock replaces the time source. Used by tests.
func (w *PostWorkflow) WithClock(now func() time.Time) *PostWorkflow {
	w.now = now
	return w
}

// Create validates fields, stores the optional image and inserts the post
// with a freshly allocated slug.
func (w *PostWorkflow) Create(ctx context.Context, authorID string, fields domain.PostFields, image *domain.ImageUpload) (post *domain.Post, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObservePostOperation(opCreate, err, timer.Seconds()) }()

	if err := w.validate(&fields, image); err != nil {
		return nil, err
	}

	postID := uuid.New().String()
	log := logger.WithPostID(postID).With(slog.String("operation", opCreate))

	var imageKey string
	if image != nil {
		imageKey, err = w.storeImage(ctx, postID, image)
		if err != nil {
			log.ErrorContext(ctx, "Failed to store featured image", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: %v", domain.ErrImageUploadFailed, err)
		}
	}

	now := w.now()
	post = &domain.Post{
		ID:       postID,
		Title:    fields.Title,
		Content:  fields.Content,
		Excerpt:  normalizeExcerpt(fields.Excerpt),
		AuthorID: authorID,
	}
	if imageKey != "" {
		post.FeaturedImage = &imageKey
	}
	post.ApplyPublishState(fields.Published, fields.PublishAt, now)

	err = w.withSlugRetry(ctx, log, func(tx repository.PostTx) error {
		s, err := slug.NewAllocator(tx).Allocate(ctx, post.Title, "")
		if err != nil {
			return err
		}
		post.Slug = s
		return tx.Insert(ctx, post)
	})
	if err != nil {
		w.discardStoredImage(ctx, log, imageKey, err)
		return nil, w.translate(ctx, log, err)
	}

	log.InfoContext(ctx, "Post created",
		slog.String("slug", post.Slug),
		slog.String("author_id", authorID),
		slog.Bool("published", post.Published))
	w.publish(ctx, events.PostCreated, post)
	return post, nil
}

// Update applies fields to an existing post. The slug is re-allocated only
// when the title changes. A new image replaces the old one, which is deleted
// after the row update commits. Authorization is the caller's job.
func (w *PostWorkflow) Update(ctx context.Context, postID string, fields domain.PostFields, image *domain.ImageUpload) (post *domain.Post, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObservePostOperation(opUpdate, err, timer.Seconds()) }()

	if err := w.validate(&fields, image); err != nil {
		return nil, err
	}

	log := logger.WithPostID(postID).With(slog.String("operation", opUpdate))

	current, err := w.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, w.translate(ctx, log, err)
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	var newKey string
	if image != nil {
		newKey, err = w.storeImage(ctx, postID, image)
		if err != nil {
			log.ErrorContext(ctx, "Failed to store featured image", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: %v", domain.ErrImageUploadFailed, err)
		}
	}

	var oldKey *string
	err = w.withSlugRetry(ctx, log, func(tx repository.PostTx) error {
		row, err := tx.FindByID(ctx, postID)
		if err != nil {
			return err
		}
		if row == nil {
			return domain.ErrNotFound
		}

		updated := *row
		if fields.Title != row.Title {
			s, err := slug.NewAllocator(tx).Allocate(ctx, fields.Title, postID)
			if err != nil {
				return err
			}
			updated.Slug = s
		}
		updated.Title = fields.Title
		updated.Content = fields.Content
		updated.Excerpt = normalizeExcerpt(fields.Excerpt)
		updated.ApplyPublishState(fields.Published, fields.PublishAt, w.now())
		if newKey != "" {
			updated.FeaturedImage = &newKey
		}

		if err := tx.Update(ctx, &updated); err != nil {
			return err
		}
		oldKey = row.FeaturedImage
		post = &updated
		return nil
	})
	if err != nil {
		w.discardStoredImage(ctx, log, newKey, err)
		return nil, w.translate(ctx, log, err)
	}

	if newKey != "" && oldKey != nil && *oldKey != newKey {
		w.deleteBlob(ctx, log, *oldKey, orphanReplacedFailed)
	}

	log.InfoContext(ctx, "Post updated", slog.String("slug", post.Slug), slog.Bool("published", post.Published))
	w.publish(ctx, events.PostUpdated, post)
	return post, nil
}

// Delete removes a post and then its image. A failing image deletion leaves
// an orphan blob and is not reported to the caller. Authorization is the
// caller's job.
func (w *PostWorkflow) Delete(ctx context.Context, postID string) (err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObservePostOperation(opDelete, err, timer.Seconds()) }()

	log := logger.WithPostID(postID).With(slog.String("operation", opDelete))

	var deleted *domain.Post
	err = w.inTx(ctx, func(tx repository.PostTx) error {
		row, err := tx.FindByID(ctx, postID)
		if err != nil {
			return err
		}
		if row == nil {
			return domain.ErrNotFound
		}
		if err := tx.Delete(ctx, postID); err != nil {
			return err
		}
		deleted = row
		return nil
	})
	if err != nil {
		return w.translate(ctx, log, err)
	}

	if deleted.FeaturedImage != nil {
		w.deleteBlob(ctx, log, *deleted.FeaturedImage, orphanDeletedFailed)
	}

	log.InfoContext(ctx, "Post deleted", slog.String("slug", deleted.Slug))
	w.publish(ctx, events.PostDeleted, deleted)
	return nil
}

func (w *PostWorkflow) validate(fields *domain.PostFields, image *domain.ImageUpload) error {
	fields.Title = strings.TrimSpace(fields.Title)
	fields.Content = strings.TrimSpace(fields.Content)
	if err := w.validator.ValidatePostFields(fields); err != nil {
		return err
	}
	return w.validator.ValidateImage(image)
}

func (w *PostWorkflow) storeImage(ctx context.Context, postID string, image *domain.ImageUpload) (string, error) {
	key := blobstore.PostImageKey(postID, image.Filename)
	stored, err := w.blobs.Put(ctx, key, image.Reader, image.Size, image.ContentType)
	metrics.ObserveBlobOperation("put", err)
	if err != nil {
		return "", err
	}
	return stored, nil
}

// withSlugRetry runs fn in a transaction and starts over when the write lost
// a race for its slug.
func (w *PostWorkflow) withSlugRetry(ctx context.Context, log *slog.Logger, fn func(tx repository.PostTx) error) error {
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		err := w.inTx(ctx, fn)
		if !errors.Is(err, repository.ErrSlugConflict) {
			return err
		}
		log.WarnContext(ctx, "Slug taken concurrently, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", maxSlugAttempts))
		if attempt < maxSlugAttempts {
			metrics.SlugConflictRetriesTotal.Inc()
		}
	}
	return domain.ErrSlugAllocationExhausted
}

// inTx runs fn inside a transaction. A failed Commit is returned as
// *commitError.
func (w *PostWorkflow) inTx(ctx context.Context, fn func(tx repository.PostTx) error) error {
	tx, err := w.repo.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// no-op after a successful commit
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			logger.WarnContext(ctx, "Rollback failed", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return &commitError{err: err}
	}
	return nil
}

// discardStoredImage removes a blob stored by a call that then failed. When
// the commit outcome is unknown the row may reference the blob, so it stays.
func (w *PostWorkflow) discardStoredImage(ctx context.Context, log *slog.Logger, key string, cause error) {
	if key == "" {
		return
	}
	var ce *commitError
	if errors.As(cause, &ce) {
		metrics.RecordOrphanedBlob(orphanCommitUnknown)
		log.WarnContext(ctx, "Commit outcome unknown, keeping stored image",
			slog.String("key", key),
			slog.String("error", cause.Error()))
		return
	}
	w.deleteBlob(ctx, log, key, orphanCleanupFailed)
}

// deleteBlob deletes key on a context detached from the caller's
// cancellation. Failures are logged and counted only.
func (w *PostWorkflow) deleteBlob(ctx context.Context, log *slog.Logger, key, orphanReason string) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.cleanupTimeout)
	defer cancel()

	err := w.blobs.Delete(cctx, key)
	metrics.ObserveBlobOperation("delete", err)
	if err != nil {
		metrics.RecordOrphanedBlob(orphanReason)
		log.WarnContext(ctx, "Failed to delete blob, leaving orphan",
			slog.String("key", key),
			slog.String("reason", orphanReason),
			slog.String("error", err.Error()))
	}
}

func (w *PostWorkflow) publish(ctx context.Context, eventType string, post *domain.Post) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.cleanupTimeout)
	defer cancel()

	err := w.publisher.Publish(pctx, events.PostEvent{
		Type:       eventType,
		PostID:     post.ID,
		Slug:       post.Slug,
		AuthorID:   post.AuthorID,
		Published:  post.Published,
		OccurredAt: w.now(),
	})
	if err != nil {
		logger.WarnContext(ctx, "Failed to publish post event",
			slog.String("type", eventType),
			slog.String("post_id", post.ID),
			slog.String("error", err.Error()))
	}
}

// translate passes domain errors through and hides everything else behind
// ErrStorageUnavailable after logging the cause.
func (w *PostWorkflow) translate(ctx context.Context, log *slog.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrValidationFailed),
		errors.Is(err, domain.ErrImageUploadFailed),
		errors.Is(err, domain.ErrSlugAllocationExhausted):
		log.WarnContext(ctx, "Post write failed", slog.String("error", err.Error()))
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		log.WarnContext(ctx, "Post write abandoned", slog.String("error", err.Error()))
		return ctxErr
	}
	log.ErrorContext(ctx, "Post write failed on backend", slog.String("error", err.Error()))
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

// normalizeExcerpt stores a blank excerpt as absent so the display fallback
// kicks in.
func normalizeExcerpt(excerpt *string) *string {
	if excerpt == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*excerpt)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
