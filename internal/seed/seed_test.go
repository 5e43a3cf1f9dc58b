package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	articleRepo "sportshub-backend/internal/domains/article/repository"
	userRepo "sportshub-backend/internal/domains/user/repository"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	users := userRepo.NewMemoryRepository()
	articles := articleRepo.NewMemoryRepository(users)

	require.NoError(t, Run(ctx, users, articles))

	author, err := users.FindByUsername(ctx, "sportsjournalist")
	require.NoError(t, err)
	assert.Equal(t, "journalist@allosportshub.com", author.Email)

	// The demo account must accept its documented password.
	err = bcrypt.CompareHashAndPassword([]byte(author.PasswordHash), []byte("demo123"))
	assert.NoError(t, err)

	feed, err := articles.ListPublished(ctx)
	require.NoError(t, err)
	assert.Len(t, feed, 5, "all demo articles start published")

	for _, a := range feed {
		assert.Equal(t, author.ID, a.AuthorID)
		assert.NotEmpty(t, a.Slug)
	}
}
