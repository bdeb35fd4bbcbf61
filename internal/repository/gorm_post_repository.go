package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"blog-service/internal/domain"
)

// postRecord is the GORM mapping of the posts table.
type postRecord struct {
	ID            string     `gorm:"primaryKey;type:char(36)"`
	Title         string     `gorm:"type:varchar(255);not null"`
	Slug          string     `gorm:"type:varchar(255);not null;uniqueIndex:posts_slug_key"`
	Content       string     `gorm:"type:text;not null"`
	Excerpt       *string    `gorm:"type:text"`
	FeaturedImage *string    `gorm:"type:varchar(512)"`
	Published     bool       `gorm:"not null;default:false;index:idx_posts_published_at,priority:1"`
	PublishedAt   *time.Time `gorm:"index:idx_posts_published_at,priority:2"`
	AuthorID      string     `gorm:"type:char(36);not null;index:idx_posts_author_id"`
	Author        userRecord `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (postRecord) TableName() string { return "posts" }

// userRecord is the GORM mapping of the users table.
type userRecord struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:users_email_key"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

func (userRecord) TableName() string { return "users" }

// AutoMigrate creates or updates the users and posts tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userRecord{}, &postRecord{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// GormPostRepository implements PostRepository on GORM (MySQL or SQLite).
// The *gorm.DB must be opened with TranslateError enabled.
type GormPostRepository struct {
	gormPostQueries
}

// NewGormPostRepository creates a new GormPostRepository.
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{gormPostQueries: gormPostQueries{db: db}}
}

// Begin starts a transaction.
func (r *GormPostRepository) Begin(ctx context.Context) (PostTx, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}
	return &gormPostTx{gormPostQueries: gormPostQueries{db: tx}}, nil
}

// FindByID retrieves a post by ID from the source database, bypassing read
// replicas.
func (r *GormPostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	source := gormPostQueries{db: r.db.Clauses(dbresolver.Write)}
	return source.findOne(ctx, "id = ?", id)
}

// FindBySlug retrieves a post by slug.
func (r *GormPostRepository) FindBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

// ListPublished retrieves published posts visible at now.
func (r *GormPostRepository) ListPublished(ctx context.Context, now time.Time, page domain.Page) ([]domain.Post, int, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		return db.Where("published = ? AND (published_at IS NULL OR published_at <= ?)", true, now)
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&postRecord{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count published posts: %w", err)
	}

	var records []postRecord
	err := r.db.WithContext(ctx).Preload("Author").Scopes(scope).
		Order("published_at DESC").Order("created_at DESC").
		Limit(page.Size).Offset(page.Offset()).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("query published posts: %w", err)
	}
	return toDomainPosts(records), int(total), nil
}

// ListByAuthor retrieves all posts of an author, drafts included.
func (r *GormPostRepository) ListByAuthor(ctx context.Context, authorID string, page domain.Page) ([]domain.Post, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&postRecord{}).Where("author_id = ?", authorID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count author posts: %w", err)
	}

	var records []postRecord
	err := r.db.WithContext(ctx).Preload("Author").Where("author_id = ?", authorID).
		Order("updated_at DESC").
		Limit(page.Size).Offset(page.Offset()).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("query author posts: %w", err)
	}
	return toDomainPosts(records), int(total), nil
}

type gormPostTx struct {
	gormPostQueries
}

func (t *gormPostTx) Commit(_ context.Context) error {
	if err := t.db.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (t *gormPostTx) Rollback(_ context.Context) error {
	err := t.db.Rollback().Error
	if err != nil && !errors.Is(err, gorm.ErrInvalidTransaction) && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

type gormPostQueries struct {
	db *gorm.DB
}

// FindByID retrieves a post by ID.
func (r gormPostQueries) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r gormPostQueries) findOne(ctx context.Context, query string, arg any) (*domain.Post, error) {
	var rec postRecord
	err := r.db.WithContext(ctx).Preload("Author").Where(query, arg).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	p := rec.toDomain()
	return &p, nil
}

// ExistsBySlug checks whether a post other than excludeID holds the slug.
func (r gormPostQueries) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&postRecord{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Limit(1).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return count > 0, nil
}

// Insert creates a post and stamps its timestamps.
func (r gormPostQueries) Insert(ctx context.Context, post *domain.Post) error {
	rec := fromDomainPost(post)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&rec).Error; err != nil {
		// ids are random UUIDs, so the only realistic duplicate is the slug
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlugConflict
		}
		return fmt.Errorf("insert post: %w", err)
	}
	post.CreatedAt = rec.CreatedAt
	post.UpdatedAt = rec.UpdatedAt
	return nil
}

// Update persists the mutable fields of a post. The author is never changed.
func (r gormPostQueries) Update(ctx context.Context, post *domain.Post) error {
	now := time.Now()
	err := r.db.WithContext(ctx).Model(&postRecord{}).Where("id = ?", post.ID).Updates(map[string]any{
		"title":          post.Title,
		"slug":           post.Slug,
		"content":        post.Content,
		"excerpt":        post.Excerpt,
		"featured_image": post.FeaturedImage,
		"published":      post.Published,
		"published_at":   post.PublishedAt,
		"updated_at":     now,
	}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlugConflict
		}
		return fmt.Errorf("update post: %w", err)
	}
	post.UpdatedAt = now
	return nil
}

// Delete removes a post. Deleting a missing post is not an error.
func (r gormPostQueries) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&postRecord{}).Error; err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// GormUserRepository implements UserRepository on GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a user and stamps CreatedAt.
func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	rec := userRecord{ID: user.ID, Email: user.Email, Name: user.Name}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	user.CreatedAt = rec.CreatedAt
	return nil
}

func fromDomainPost(p *domain.Post) postRecord {
	return postRecord{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Content:       p.Content,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		Published:     p.Published,
		PublishedAt:   p.PublishedAt,
		AuthorID:      p.AuthorID,
	}
}

func (rec postRecord) toDomain() domain.Post {
	return domain.Post{
		ID:            rec.ID,
		Title:         rec.Title,
		Slug:          rec.Slug,
		Content:       rec.Content,
		Excerpt:       rec.Excerpt,
		FeaturedImage: rec.FeaturedImage,
		Published:     rec.Published,
		PublishedAt:   rec.PublishedAt,
		AuthorID:      rec.AuthorID,
		AuthorName:    rec.Author.Name,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func toDomainPosts(records []postRecord) []domain.Post {
	posts := make([]domain.Post, 0, len(records))
	for _, rec := range records {
		posts = append(posts, rec.toDomain())
	}
	return posts
}
