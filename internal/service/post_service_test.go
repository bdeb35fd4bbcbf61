package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-service/internal/domain"
	"blog-service/internal/events"
	"blog-service/internal/mocks"
	"blog-service/internal/policy"
	"blog-service/internal/service"
)

func newPostService(f *workflowFixture) *service.PostService {
	return service.NewPostService(f.repo, f.workflow, policy.NewPostPolicy(), f.blobs, 10).
		WithClock(func() time.Time { return fixedNow })
}

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("requires an actor", func(t *testing.T) {
		f := newWorkflowFixture(t)

		_, err := newPostService(f).CreatePost(ctx, "", domain.PostFields{Title: "T", Content: "c"}, nil)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("actor becomes the author", func(t *testing.T) {
		f := newWorkflowFixture(t)
		tx := f.beginTx(t)
		tx.EXPECT().ExistsBySlug(mock.Anything, "t", "").Return(false, nil)
		tx.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(p *domain.Post) bool { return p.AuthorID == "u-1" })).Return(nil)
		tx.EXPECT().Commit(mock.Anything).Return(nil)
		f.expectEvent(events.PostCreated)

		post, err := newPostService(f).CreatePost(ctx, "u-1", domain.PostFields{Title: "T", Content: "c"}, nil)

		require.NoError(t, err)
		assert.Equal(t, "u-1", post.AuthorID)
	})
}

func TestPostService_UpdateAndDeletePost(t *testing.T) {
	ctx := context.Background()
	owned := &domain.Post{ID: "p-1", Title: "T", Slug: "t", AuthorID: "owner"}

	t.Run("stranger cannot update", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.repo.EXPECT().FindByID(mock.Anything, "p-1").Return(owned, nil)

		_, err := newPostService(f).UpdatePost(ctx, "stranger", "p-1", domain.PostFields{Title: "T", Content: "c"}, nil)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		f.repo.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.repo.EXPECT().FindByID(mock.Anything, "p-1").Return(owned, nil)

		err := newPostService(f).DeletePost(ctx, "stranger", "p-1")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing post", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.repo.EXPECT().FindByID(mock.Anything, "p-9").Return(nil, nil)

		err := newPostService(f).DeletePost(ctx, "owner", "p-9")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.repo.EXPECT().FindByID(mock.Anything, "p-1").Return(owned, nil)
		tx := f.beginTx(t)
		tx.EXPECT().FindByID(mock.Anything, "p-1").Return(owned, nil)
		tx.EXPECT().Delete(mock.Anything, "p-1").Return(nil)
		tx.EXPECT().Commit(mock.Anything).Return(nil)
		f.expectEvent(events.PostDeleted)

		assert.NoError(t, newPostService(f).DeletePost(ctx, "owner", "p-1"))
	})

	t.Run("owner updates", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.repo.EXPECT().FindByID(mock.Anything, "p-1").Return(owned, nil)
		tx := f.beginTx(t)
		tx.EXPECT().FindByID(mock.Anything, "p-1").Return(owned, nil)
		tx.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
		tx.EXPECT().Commit(mock.Anything).Return(nil)
		f.expectEvent(events.PostUpdated)

		post, err := newPostService(f).UpdatePost(ctx, "owner", "p-1", domain.PostFields{Title: "T", Content: "new"}, nil)

		require.NoError(t, err)
		assert.Equal(t, "new", post.Content)
	})
}

func TestPostService_GetPost(t *testing.T) {
	ctx := context.Background()
	future := fixedNow.Add(time.Hour)
	scheduled := &domain.Post{ID: "p-1", Slug: "soon", AuthorID: "owner", Published: true, PublishedAt: &future}

	t.Run("scheduled post is hidden from others", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.repo.EXPECT().FindBySlug(mock.Anything, "soon").Return(scheduled, nil)

		_, err := newPostService(f).GetPost(ctx, "", "soon")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("author sees scheduled post", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.repo.EXPECT().FindBySlug(mock.Anything, "soon").Return(scheduled, nil)

		post, err := newPostService(f).GetPost(ctx, "owner", "soon")

		require.NoError(t, err)
		assert.Equal(t, "p-1", post.ID)
	})

	t.Run("unknown slug", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.repo.EXPECT().FindBySlug(mock.Anything, "nope").Return(nil, nil)

		_, err := newPostService(f).GetPost(ctx, "owner", "nope")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("backend failure", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.repo.EXPECT().FindBySlug(mock.Anything, "x").Return(nil, errors.New("pool closed"))

		_, err := newPostService(f).GetPost(ctx, "", "x")

		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	})
}

func TestPostService_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("published uses clock and page", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.repo.EXPECT().
			ListPublished(mock.Anything, fixedNow, domain.Page{Number: 2, Size: 10}).
			Return([]domain.Post{{ID: "a"}}, 11, nil)

		list, err := newPostService(f).ListPublished(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, 11, list.Total)
		assert.Equal(t, 2, list.Page)
		assert.Len(t, list.Posts, 1)
	})

	t.Run("page below one is the first page", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.repo.EXPECT().
			ListPublished(mock.Anything, fixedNow, domain.Page{Number: 1, Size: 10}).
			Return(nil, 0, nil)

		list, err := newPostService(f).ListPublished(ctx, -3)

		require.NoError(t, err)
		assert.Equal(t, 1, list.Page)
	})

	t.Run("mine requires an actor", func(t *testing.T) {
		f := newWorkflowFixture(t)

		_, err := newPostService(f).ListMine(ctx, "", 1)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("mine lists by author", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.repo.EXPECT().
			ListByAuthor(mock.Anything, "owner", domain.Page{Number: 1, Size: 10}).
			Return([]domain.Post{{ID: "d", AuthorID: "owner"}}, 1, nil)

		list, err := newPostService(f).ListMine(ctx, "owner", 1)

		require.NoError(t, err)
		assert.Equal(t, 1, list.Total)
	})
}

func TestPostService_ImageURL(t *testing.T) {
	blobs := mocks.NewMockBlobStore(t)
	blobs.EXPECT().URLFor("posts/p/a.png").Return("https://cdn.example.com/posts/p/a.png")

	svc := service.NewPostService(mocks.NewMockPostRepository(t), nil, policy.NewPostPolicy(), blobs, 10)

	assert.Equal(t, "https://cdn.example.com/posts/p/a.png", svc.ImageURL("posts/p/a.png"))
}
