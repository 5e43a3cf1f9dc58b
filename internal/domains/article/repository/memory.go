package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	article "sportshub-backend/internal/domains/article"
	"sportshub-backend/internal/domains/user"
)

// memoryRepository keeps articles in process memory. Author bylines are
// resolved through the user repository, mirroring the SQL join.
type memoryRepository struct {
	mu       sync.RWMutex
	articles map[uuid.UUID]*article.Article
	users    user.Repository
}

// NewMemoryRepository creates an empty in-memory article store backed by
// the given user repository for byline lookups.
func NewMemoryRepository(users user.Repository) article.Repository {
	return &memoryRepository{
		articles: make(map[uuid.UUID]*article.Article),
		users:    users,
	}
}

// ========================================
// WRITES
// ========================================

func (r *memoryRepository) Create(ctx context.Context, a *article.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.articles {
		if existing.Slug == a.Slug {
			return article.ErrSlugAlreadyExists
		}
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	clone := *a
	r.articles[a.ID] = &clone
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, a *article.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.articles[a.ID]
	if !ok {
		return article.ErrArticleNotFound
	}

	for id, existing := range r.articles {
		if id != a.ID && existing.Slug == a.Slug {
			return article.ErrSlugAlreadyExists
		}
	}

	// Views are owned by IncrementViews, not by editor saves.
	a.Views = stored.Views

	clone := *a
	r.articles[a.ID] = &clone
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[id]; !ok {
		return article.ErrArticleNotFound
	}
	delete(r.articles, id)
	return nil
}

func (r *memoryRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.articles[id]
	if !ok {
		return 0, article.ErrArticleNotFound
	}
	a.Views++
	return a.Views, nil
}

func (r *memoryRepository) PublishDue(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	published := 0
	for _, a := range r.articles {
		if !a.Published && a.ScheduledAt != nil && !a.ScheduledAt.After(now) {
			a.Published = true
			a.ScheduledAt = nil
			a.UpdatedAt = now
			published++
		}
	}
	return published, nil
}

// ========================================
// READS
// ========================================

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*article.ArticleWithAuthor, error) {
	r.mu.RLock()
	a, ok := r.articles[id]
	if !ok {
		r.mu.RUnlock()
		return nil, article.ErrArticleNotFound
	}
	clone := *a
	r.mu.RUnlock()

	return r.withAuthor(ctx, clone)
}

func (r *memoryRepository) ListPublished(ctx context.Context) ([]article.ArticleWithAuthor, error) {
	return r.list(ctx, func(a *article.Article) bool {
		return a.Published
	})
}

func (r *memoryRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]article.ArticleWithAuthor, error) {
	return r.list(ctx, func(a *article.Article) bool {
		return a.AuthorID == authorID
	})
}

func (r *memoryRepository) Search(ctx context.Context, query string) ([]article.ArticleWithAuthor, error) {
	q := strings.ToLower(query)
	return r.list(ctx, func(a *article.Article) bool {
		return a.Published && (strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Excerpt), q) ||
			strings.Contains(strings.ToLower(a.Content), q) ||
			strings.Contains(strings.ToLower(a.Category), q))
	})
}

// ========================================
// HELPERS
// ========================================

func (r *memoryRepository) list(ctx context.Context, match func(*article.Article) bool) ([]article.ArticleWithAuthor, error) {
	r.mu.RLock()
	selected := make([]article.Article, 0)
	for _, a := range r.articles {
		if match(a) {
			selected = append(selected, *a)
		}
	}
	r.mu.RUnlock()

	// Newest first, matching the SQL ORDER BY.
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].CreatedAt.After(selected[j].CreatedAt)
	})

	result := make([]article.ArticleWithAuthor, 0, len(selected))
	for _, a := range selected {
		withAuthor, err := r.withAuthor(ctx, a)
		if err != nil {
			return nil, err
		}
		result = append(result, *withAuthor)
	}
	return result, nil
}

func (r *memoryRepository) withAuthor(ctx context.Context, a article.Article) (*article.ArticleWithAuthor, error) {
	u, err := r.users.FindByID(ctx, a.AuthorID)
	if err != nil {
		return nil, article.ErrAuthorNotFound
	}
	return &article.ArticleWithAuthor{
		Article: a,
		Author: article.Author{
			ID:              u.ID,
			Username:        u.Username,
			FirstName:       u.FirstName,
			LastName:        u.LastName,
			ProfileImageURL: u.ProfileImageURL,
		},
	}, nil
}
