package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sportshub-backend/internal/domains/article"
	"sportshub-backend/internal/domains/user"
	"sportshub-backend/internal/shared/utils"
	"sportshub-backend/pkg/logger"
)

// articleService implements article.Service.
type articleService struct {
	repo article.Repository
}

// NewArticleService wires the repository.
func NewArticleService(repo article.Repository) article.Service {
	return &articleService{repo: repo}
}

// ========================================
// PUBLIC READS
// ========================================

func (s *articleService) ListPublished(ctx context.Context) ([]article.ArticleWithAuthor, error) {
	return s.repo.ListPublished(ctx)
}

func (s *articleService) Search(ctx context.Context, query string) ([]article.ArticleWithAuthor, error) {
	return s.repo.Search(ctx, query)
}

func (s *articleService) ListMine(ctx context.Context, authorID uuid.UUID) ([]article.ArticleWithAuthor, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

// Get returns the article and counts the read. The increment happens
// first so the returned payload already carries the new total.
func (s *articleService) Get(ctx context.Context, id uuid.UUID) (*article.ArticleWithAuthor, error) {
	views, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Views < views {
		a.Views = views
	}
	return a, nil
}

// ========================================
// AUTHOR WRITES
// ========================================

func (s *articleService) Create(ctx context.Context, actor article.Actor, req article.CreateArticleRequest) (*article.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := &article.Article{
		Title:       req.Title,
		Slug:        utils.GenerateSlug(req.Title),
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Category:    req.Category,
		ImageURL:    stringPtr(req.ImageURL),
		ImageCredit: stringPtr(req.ImageCredit),
		AuthorID:    actor.UserID,
		Published:   req.Published,
		Featured:    req.Featured,
		ScheduledAt: req.ScheduledAt,
	}

	// A scheduled article stays hidden until the scheduler flips it.
	if a.ScheduledAt != nil && a.ScheduledAt.After(time.Now()) {
		a.Published = false
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	logger.Info("article created", map[string]interface{}{
		"id":     a.ID.String(),
		"slug":   a.Slug,
		"author": actor.UserID.String(),
	})
	return a, nil
}

func (s *articleService) Update(ctx context.Context, actor article.Actor, id uuid.UUID, req article.UpdateArticleRequest) (*article.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkOwnership(actor, existing.AuthorID); err != nil {
		return nil, err
	}

	a := existing.Article

	if req.Title != nil && *req.Title != a.Title {
		a.Title = *req.Title
		a.Slug = utils.GenerateSlug(*req.Title)
	}
	if req.Excerpt != nil {
		a.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		a.Content = *req.Content
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.ImageURL != nil {
		a.ImageURL = stringPtr(*req.ImageURL)
	}
	if req.ImageCredit != nil {
		a.ImageCredit = stringPtr(*req.ImageCredit)
	}
	if req.Published != nil {
		a.Published = *req.Published
		if a.Published {
			// Publishing now cancels any pending schedule.
			a.ScheduledAt = nil
		}
	}
	if req.Featured != nil {
		a.Featured = *req.Featured
	}
	if req.ScheduledAt != nil {
		a.ScheduledAt = req.ScheduledAt
		a.Published = false
	}
	a.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *articleService) Delete(ctx context.Context, actor article.Actor, id uuid.UUID) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := checkOwnership(actor, existing.AuthorID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

// ========================================
// HELPERS
// ========================================

// checkOwnership allows the owning author and admins through.
func checkOwnership(actor article.Actor, authorID uuid.UUID) error {
	if actor.Role == user.RoleAdmin {
		return nil
	}
	if actor.UserID != authorID {
		return article.ErrNotOwner
	}
	return nil
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
