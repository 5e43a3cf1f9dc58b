package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportshub-backend/internal/domains/article"
	"sportshub-backend/internal/domains/user"
	userRepo "sportshub-backend/internal/domains/user/repository"
)

func newStores(t *testing.T) (user.Repository, article.Repository, *user.User) {
	t.Helper()

	users := userRepo.NewMemoryRepository()
	articles := NewMemoryRepository(users)

	author := &user.User{
		Username:     "writer",
		Email:        "writer@example.com",
		PasswordHash: "x",
		Role:         user.RoleAuthor,
	}
	require.NoError(t, users.Create(context.Background(), author))

	return users, articles, author
}

func TestPublishDue(t *testing.T) {
	_, articles, author := newStores(t)
	ctx := context.Background()

	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)

	due := &article.Article{
		Title: "Due", Slug: "due", Excerpt: "e", Content: "c", Category: "NHL",
		AuthorID: author.ID, ScheduledAt: &past,
	}
	notDue := &article.Article{
		Title: "Not Due", Slug: "not-due", Excerpt: "e", Content: "c", Category: "NHL",
		AuthorID: author.ID, ScheduledAt: &future,
	}
	require.NoError(t, articles.Create(ctx, due))
	require.NoError(t, articles.Create(ctx, notDue))

	n, err := articles.PublishDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := articles.FindByID(ctx, due.ID)
	require.NoError(t, err)
	assert.True(t, got.Published)
	assert.Nil(t, got.ScheduledAt, "schedule cleared once published")

	still, err := articles.FindByID(ctx, notDue.ID)
	require.NoError(t, err)
	assert.False(t, still.Published)

	// A second run finds nothing left to publish.
	n, err = articles.PublishDue(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListOrderNewestFirst(t *testing.T) {
	_, articles, author := newStores(t)
	ctx := context.Background()

	older := &article.Article{
		Title: "Older", Slug: "older", Excerpt: "e", Content: "c", Category: "NHL",
		AuthorID: author.ID, Published: true,
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	newer := &article.Article{
		Title: "Newer", Slug: "newer", Excerpt: "e", Content: "c", Category: "NHL",
		AuthorID: author.ID, Published: true,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, articles.Create(ctx, older))
	require.NoError(t, articles.Create(ctx, newer))

	feed, err := articles.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "Newer", feed[0].Title)
	assert.Equal(t, "Older", feed[1].Title)
}

func TestFindByIDCarriesAuthor(t *testing.T) {
	_, articles, author := newStores(t)
	ctx := context.Background()

	a := &article.Article{
		Title: "Bylined", Slug: "bylined", Excerpt: "e", Content: "c", Category: "NHL",
		AuthorID: author.ID, Published: true,
	}
	require.NoError(t, articles.Create(ctx, a))

	got, err := articles.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, got.Author.ID)
	assert.Equal(t, "writer", got.Author.Username)
}

func TestUpdatePreservesViews(t *testing.T) {
	_, articles, author := newStores(t)
	ctx := context.Background()

	a := &article.Article{
		Title: "Counted", Slug: "counted", Excerpt: "e", Content: "c", Category: "NHL",
		AuthorID: author.ID, Published: true,
	}
	require.NoError(t, articles.Create(ctx, a))

	_, err := articles.IncrementViews(ctx, a.ID)
	require.NoError(t, err)

	a.Title = "Counted Still"
	require.NoError(t, articles.Update(ctx, a))

	got, err := articles.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views, "editor saves must not reset the counter")
}
