package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/domain"
	"blog-service/internal/repository"
)

// repoFixture is one backend under test. reset empties posts and users.
type repoFixture struct {
	posts repository.PostRepository
	users repository.UserRepository
	reset func(t *testing.T)
}

func newAuthor(t *testing.T, f repoFixture, name string) *domain.User {
	t.Helper()
	u := &domain.User{ID: uuid.NewString(), Email: uuid.NewString() + "@example.com", Name: name}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func newPost(authorID, slug string, published bool, publishedAt *time.Time) *domain.Post {
	return &domain.Post{
		ID:          uuid.NewString(),
		Title:       slug,
		Slug:        slug,
		Content:     "content of " + slug,
		Published:   published,
		PublishedAt: publishedAt,
		AuthorID:    authorID,
	}
}

func at(hour int) *time.Time {
	t := time.Date(2026, 3, 1, hour, 0, 0, 0, time.UTC)
	return &t
}

func slugsOf(posts []domain.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

// runPostRepositoryContract checks the behavior every PostRepository
// backend must share.
func runPostRepositoryContract(t *testing.T, f repoFixture) {
	ctx := context.Background()

	t.Run("insert and find", func(t *testing.T) {
		f.reset(t)
		author := newAuthor(t, f, "Ada")
		excerpt := "short"
		image := "posts/x/cover.png"
		post := newPost(author.ID, "hello-world", true, at(9))
		post.Excerpt = &excerpt
		post.FeaturedImage = &image

		require.NoError(t, f.posts.Insert(ctx, post))
		assert.False(t, post.CreatedAt.IsZero())
		assert.False(t, post.UpdatedAt.IsZero())

		byID, err := f.posts.FindByID(ctx, post.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "hello-world", byID.Slug)
		assert.Equal(t, "Ada", byID.AuthorName)
		require.NotNil(t, byID.Excerpt)
		assert.Equal(t, "short", *byID.Excerpt)
		require.NotNil(t, byID.FeaturedImage)
		assert.Equal(t, image, *byID.FeaturedImage)
		require.NotNil(t, byID.PublishedAt)
		assert.True(t, at(9).Equal(*byID.PublishedAt))

		bySlug, err := f.posts.FindBySlug(ctx, "hello-world")
		require.NoError(t, err)
		require.NotNil(t, bySlug)
		assert.Equal(t, post.ID, bySlug.ID)
	})

	t.Run("missing post is nil without error", func(t *testing.T) {
		f.reset(t)

		byID, err := f.posts.FindByID(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, byID)

		bySlug, err := f.posts.FindBySlug(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, bySlug)
	})

	t.Run("duplicate slug is a conflict", func(t *testing.T) {
		f.reset(t)
		author := newAuthor(t, f, "Ada")
		require.NoError(t, f.posts.Insert(ctx, newPost(author.ID, "taken", false, nil)))

		err := f.posts.Insert(ctx, newPost(author.ID, "taken", false, nil))

		assert.ErrorIs(t, err, repository.ErrSlugConflict)
	})

	t.Run("update onto a taken slug is a conflict", func(t *testing.T) {
		f.reset(t)
		author := newAuthor(t, f, "Ada")
		require.NoError(t, f.posts.Insert(ctx, newPost(author.ID, "first", false, nil)))
		second := newPost(author.ID, "second", false, nil)
		require.NoError(t, f.posts.Insert(ctx, second))

		second.Slug = "first"
		err := f.posts.Update(ctx, second)

		assert.ErrorIs(t, err, repository.ErrSlugConflict)
	})

	t.Run("exists by slug honors exclude", func(t *testing.T) {
		f.reset(t)
		author := newAuthor(t, f, "Ada")
		post := newPost(author.ID, "foo", false, nil)
		require.NoError(t, f.posts.Insert(ctx, post))

		exists, err := f.posts.ExistsBySlug(ctx, "foo", "")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = f.posts.ExistsBySlug(ctx, "foo", post.ID)
		require.NoError(t, err)
		assert.False(t, exists, "a post never collides with itself")

		exists, err = f.posts.ExistsBySlug(ctx, "foo-1", "")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("update persists fields and clears nullable ones", func(t *testing.T) {
		f.reset(t)
		author := newAuthor(t, f, "Ada")
		excerpt := "old"
		image := "posts/p/old.png"
		post := newPost(author.ID, "draft", true, at(8))
		post.Excerpt = &excerpt
		post.FeaturedImage = &image
		require.NoError(t, f.posts.Insert(ctx, post))

		post.Title = "Renamed"
		post.Slug = "renamed"
		post.Content = "new body"
		post.Excerpt = nil
		post.FeaturedImage = nil
		post.Published = false
		require.NoError(t, f.posts.Update(ctx, post))

		stored, err := f.posts.FindByID(ctx, post.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Renamed", stored.Title)
		assert.Equal(t, "renamed", stored.Slug)
		assert.Equal(t, "new body", stored.Content)
		assert.Nil(t, stored.Excerpt)
		assert.Nil(t, stored.FeaturedImage)
		assert.False(t, stored.Published)
		require.NotNil(t, stored.PublishedAt, "unpublishing keeps the original publication time")
		assert.Equal(t, author.ID, stored.AuthorID)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		f.reset(t)
		author := newAuthor(t, f, "Ada")
		post := newPost(author.ID, "bye", false, nil)
		require.NoError(t, f.posts.Insert(ctx, post))

		require.NoError(t, f.posts.Delete(ctx, post.ID))
		require.NoError(t, f.posts.Delete(ctx, post.ID))

		stored, err := f.posts.FindByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("rollback discards writes", func(t *testing.T) {
		f.reset(t)
		author := newAuthor(t, f, "Ada")

		tx, err := f.posts.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Insert(ctx, newPost(author.ID, "ghost", false, nil)))

		exists, err := tx.ExistsBySlug(ctx, "ghost", "")
		require.NoError(t, err)
		assert.True(t, exists, "the transaction sees its own insert")

		require.NoError(t, tx.Rollback(ctx))

		found, err := f.posts.FindBySlug(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("rollback after commit is a no-op", func(t *testing.T) {
		f.reset(t)
		author := newAuthor(t, f, "Ada")

		tx, err := f.posts.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Insert(ctx, newPost(author.ID, "kept", false, nil)))
		require.NoError(t, tx.Commit(ctx))

		assert.NoError(t, tx.Rollback(ctx))

		found, err := f.posts.FindBySlug(ctx, "kept")
		require.NoError(t, err)
		assert.NotNil(t, found)
	})

	t.Run("list published filters and orders", func(t *testing.T) {
		f.reset(t)
		author := newAuthor(t, f, "Ada")
		now := *at(12)

		for _, p := range []*domain.Post{
			newPost(author.ID, "old", true, at(6)),
			newPost(author.ID, "new", true, at(11)),
			newPost(author.ID, "middle", true, at(9)),
			newPost(author.ID, "draft", false, nil),
			newPost(author.ID, "scheduled", true, at(15)),
		} {
			require.NoError(t, f.posts.Insert(ctx, p))
		}

		posts, total, err := f.posts.ListPublished(ctx, now, domain.Page{Number: 1, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Equal(t, []string{"new", "middle", "old"}, slugsOf(posts))
		assert.Equal(t, "Ada", posts[0].AuthorName)

		posts, total, err = f.posts.ListPublished(ctx, now, domain.Page{Number: 2, Size: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Equal(t, []string{"old"}, slugsOf(posts))

		posts, total, err = f.posts.ListPublished(ctx, *at(16), domain.Page{Number: 1, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, 4, total, "scheduled post becomes visible once its time passes")
		assert.Equal(t, "scheduled", posts[0].Slug)
	})

	t.Run("list by author includes drafts only for that author", func(t *testing.T) {
		f.reset(t)
		ada := newAuthor(t, f, "Ada")
		bob := newAuthor(t, f, "Bob")

		require.NoError(t, f.posts.Insert(ctx, newPost(ada.ID, "ada-draft", false, nil)))
		require.NoError(t, f.posts.Insert(ctx, newPost(ada.ID, "ada-live", true, at(9))))
		require.NoError(t, f.posts.Insert(ctx, newPost(bob.ID, "bob-live", true, at(9))))

		posts, total, err := f.posts.ListByAuthor(ctx, ada.ID, domain.Page{Number: 1, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.ElementsMatch(t, []string{"ada-draft", "ada-live"}, slugsOf(posts))
	})
}
