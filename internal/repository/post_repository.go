package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-service/internal/domain"
)

const postColumns = `p.id, p.title, p.slug, p.content, p.excerpt, p.featured_image, p.published, p.published_at,
	p.author_id, COALESCE(u.name, ''), p.created_at, p.updated_at`

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	postgresPostQueries
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{
		postgresPostQueries: postgresPostQueries{q: pool},
		pool:                pool,
	}
}

// Begin starts a transaction.
func (r *PostgresPostRepository) Begin(ctx context.Context) (PostTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &postgresPostTx{postgresPostQueries: postgresPostQueries{q: tx}, tx: tx}, nil
}

// FindBySlug retrieves a post by slug.
func (r *PostgresPostRepository) FindBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts p
		LEFT JOIN users u ON u.id = p.author_id
		WHERE p.slug = $1
	`, slug)

	post, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post by slug: %w", err)
	}
	return post, nil
}

// ListPublished retrieves published posts visible at now.
func (r *PostgresPostRepository) ListPublished(ctx context.Context, now time.Time, page domain.Page) ([]domain.Post, int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM posts p
		WHERE p.published AND (p.published_at IS NULL OR p.published_at <= $1)
	`, now).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count published posts: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts p
		LEFT JOIN users u ON u.id = p.author_id
		WHERE p.published AND (p.published_at IS NULL OR p.published_at <= $1)
		ORDER BY p.published_at DESC NULLS LAST, p.created_at DESC
		LIMIT $2 OFFSET $3
	`, now, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("query published posts: %w", err)
	}

	posts, err := collectPosts(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListByAuthor retrieves all posts of an author, drafts included.
func (r *PostgresPostRepository) ListByAuthor(ctx context.Context, authorID string, page domain.Page) ([]domain.Post, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count author posts: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts p
		LEFT JOIN users u ON u.id = p.author_id
		WHERE p.author_id = $1
		ORDER BY p.updated_at DESC
		LIMIT $2 OFFSET $3
	`, authorID, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("query author posts: %w", err)
	}

	posts, err := collectPosts(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

type postgresPostTx struct {
	postgresPostQueries
	tx pgx.Tx
}

func (t *postgresPostTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (t *postgresPostTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

type postgresPostQueries struct {
	q querier
}

// FindByID retrieves a post by ID.
func (r postgresPostQueries) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts p
		LEFT JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, id)

	post, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// ExistsBySlug checks whether a post other than excludeID holds the slug.
func (r postgresPostQueries) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	var err error
	if excludeID == "" {
		err = r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)`, slug).Scan(&exists)
	} else {
		err = r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1 AND id <> $2)`, slug, excludeID).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

// Insert creates a post and stamps its timestamps.
func (r postgresPostQueries) Insert(ctx context.Context, post *domain.Post) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO posts (id, title, slug, content, excerpt, featured_image, published, published_at,
			author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`, post.ID, post.Title, post.Slug, post.Content, post.Excerpt, post.FeaturedImage, post.Published,
		post.PublishedAt, post.AuthorID).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if isSlugViolation(err) {
			return ErrSlugConflict
		}
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// Update persists the mutable fields of a post. The author is never changed.
func (r postgresPostQueries) Update(ctx context.Context, post *domain.Post) error {
	err := r.q.QueryRow(ctx, `
		UPDATE posts
		SET title = $2, slug = $3, content = $4, excerpt = $5, featured_image = $6,
			published = $7, published_at = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, post.ID, post.Title, post.Slug, post.Content, post.Excerpt, post.FeaturedImage, post.Published,
		post.PublishedAt).Scan(&post.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		if isSlugViolation(err) {
			return ErrSlugConflict
		}
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

// Delete removes a post. Deleting a missing post is not an error.
func (r postgresPostQueries) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func isSlugViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "slug")
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.FeaturedImage, &p.Published,
		&p.PublishedAt, &p.AuthorID, &p.AuthorName, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPosts(rows pgx.Rows) ([]domain.Post, error) {
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}
