package article

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the data-access contract for articles. All reads
// that leave the service layer carry the author byline, so the list and
// find methods return ArticleWithAuthor.
type Repository interface {
	// Create inserts a new article.
	// Returns ErrSlugAlreadyExists when the derived slug is taken.
	Create(ctx context.Context, a *Article) error

	// FindByID returns one article regardless of its published state.
	// Returns ErrArticleNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*ArticleWithAuthor, error)

	// ListPublished returns published articles, newest first.
	ListPublished(ctx context.Context) ([]ArticleWithAuthor, error)

	// ListByAuthor returns every article of one author, drafts included,
	// newest first.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]ArticleWithAuthor, error)

	// Search returns published articles whose title, excerpt, content or
	// category contains the query, case-insensitive, newest first.
	Search(ctx context.Context, query string) ([]ArticleWithAuthor, error)

	// Update persists a modified article.
	// Returns ErrArticleNotFound or ErrSlugAlreadyExists.
	Update(ctx context.Context, a *Article) error

	// Delete removes an article.
	// Returns ErrArticleNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews bumps the view counter atomically and returns the
	// new value.
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)

	// PublishDue flips published on every article whose scheduled_at has
	// passed and clears the schedule. Returns how many were published.
	PublishDue(ctx context.Context) (int, error)
}
