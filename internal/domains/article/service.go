package article

import (
	"context"

	"github.com/google/uuid"

	"sportshub-backend/internal/domains/user"
)

// Actor identifies who is performing a write, for ownership checks.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

// Service defines the business-logic contract for articles.
type Service interface {
	// ListPublished is the public feed.
	ListPublished(ctx context.Context) ([]ArticleWithAuthor, error)

	// Search is the public full-text-ish search over published articles.
	Search(ctx context.Context, query string) ([]ArticleWithAuthor, error)

	// ListMine returns the actor's own articles, drafts included.
	ListMine(ctx context.Context, authorID uuid.UUID) ([]ArticleWithAuthor, error)

	// Get returns one article and bumps its view counter.
	Get(ctx context.Context, id uuid.UUID) (*ArticleWithAuthor, error)

	// Create derives the slug from the title and stores the article
	// under the actor's authorship.
	Create(ctx context.Context, actor Actor, req CreateArticleRequest) (*Article, error)

	// Update applies a partial update. Only the owner or an admin may
	// edit; a title change re-derives the slug.
	Update(ctx context.Context, actor Actor, id uuid.UUID, req UpdateArticleRequest) (*Article, error)

	// Delete removes an article. Only the owner or an admin may delete.
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}
