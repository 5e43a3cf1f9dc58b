package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	article "sportshub-backend/internal/domains/article"
	"sportshub-backend/pkg/cache"
)

const (
	listCacheKey = "articles:published"
	listCacheTTL = 15 * time.Minute
)

// articleColumns is every column the joined read queries select, in
// scan order. Keep in sync with scanArticleWithAuthor.
const articleColumns = `
	a.id, a.title, a.slug, a.excerpt, a.content, a.category,
	a.image_url, a.image_credit, a.author_id, a.views,
	a.published, a.featured, a.scheduled_at, a.created_at, a.updated_at,
	u.id, u.username, u.first_name, u.last_name, u.profile_image_url
`

// postgresRepository is the Postgres implementation of article.Repository.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository wires a pgx pool and a cache into an
// article.Repository.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) article.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// ========================================
// WRITES
// ========================================

func (r *postgresRepository) Create(ctx context.Context, a *article.Article) error {
	query := `
		INSERT INTO articles (
			title, slug, excerpt, content, category,
			image_url, image_credit, author_id,
			published, featured, scheduled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, views, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		a.Title,
		a.Slug,
		a.Excerpt,
		a.Content,
		a.Category,
		a.ImageURL,
		a.ImageCredit,
		a.AuthorID,
		a.Published,
		a.Featured,
		a.ScheduledAt,
	).Scan(&a.ID, &a.Views, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return article.ErrSlugAlreadyExists
		}
		return fmt.Errorf("create article: %w", err)
	}

	r.invalidateListCache(ctx)
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, a *article.Article) error {
	query := `
		UPDATE articles SET
			title = $1, slug = $2, excerpt = $3, content = $4, category = $5,
			image_url = $6, image_credit = $7,
			published = $8, featured = $9, scheduled_at = $10,
			updated_at = $11
		WHERE id = $12
	`

	tag, err := r.pool.Exec(ctx, query,
		a.Title,
		a.Slug,
		a.Excerpt,
		a.Content,
		a.Category,
		a.ImageURL,
		a.ImageCredit,
		a.Published,
		a.Featured,
		a.ScheduledAt,
		a.UpdatedAt,
		a.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return article.ErrSlugAlreadyExists
		}
		return fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return article.ErrArticleNotFound
	}

	r.invalidateArticleCache(ctx, a.ID)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return article.ErrArticleNotFound
	}

	r.invalidateArticleCache(ctx, id)
	return nil
}

// IncrementViews bumps the counter atomically in a single statement so
// concurrent readers never lose an increment.
func (r *postgresRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	err := r.pool.QueryRow(ctx,
		`UPDATE articles SET views = views + 1 WHERE id = $1 RETURNING views`, id,
	).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, article.ErrArticleNotFound
		}
		return 0, fmt.Errorf("increment views: %w", err)
	}

	// Keep the cached detail from serving a stale counter.
	_ = r.cache.Delete(ctx, fmt.Sprintf("article:%s", id.String()))
	return views, nil
}

// PublishDue backs the scheduler. One statement, no read-modify-write.
func (r *postgresRepository) PublishDue(ctx context.Context) (int, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET published = TRUE, scheduled_at = NULL, updated_at = NOW()
		WHERE published = FALSE AND scheduled_at IS NOT NULL AND scheduled_at <= NOW()
	`)
	if err != nil {
		return 0, fmt.Errorf("publish due articles: %w", err)
	}

	if tag.RowsAffected() > 0 {
		r.invalidateListCache(ctx)
	}
	return int(tag.RowsAffected()), nil
}

// ========================================
// READS
// ========================================

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*article.ArticleWithAuthor, error) {
	cacheKey := fmt.Sprintf("article:%s", id.String())

	var cached article.ArticleWithAuthor
	found, err := r.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil
	}

	query := `
		SELECT ` + articleColumns + `
		FROM articles a
		JOIN users u ON a.author_id = u.id
		WHERE a.id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	a, err := scanArticleWithAuthor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, a, listCacheTTL)
	return a, nil
}

func (r *postgresRepository) ListPublished(ctx context.Context) ([]article.ArticleWithAuthor, error) {
	var cached []article.ArticleWithAuthor
	found, err := r.cache.Get(ctx, listCacheKey, &cached)
	if err == nil && found {
		return cached, nil
	}

	query := `
		SELECT ` + articleColumns + `
		FROM articles a
		JOIN users u ON a.author_id = u.id
		WHERE a.published = TRUE
		ORDER BY a.created_at DESC
	`

	articles, err := r.queryArticles(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}

	_ = r.cache.Set(ctx, listCacheKey, articles, listCacheTTL)
	return articles, nil
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]article.ArticleWithAuthor, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles a
		JOIN users u ON a.author_id = u.id
		WHERE a.author_id = $1
		ORDER BY a.created_at DESC
	`

	articles, err := r.queryArticles(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("list articles by author: %w", err)
	}
	return articles, nil
}

// Search matches the query against title, excerpt, content and category
// of published articles. ILIKE keeps it case-insensitive; the result set
// is small enough that sequential scans are fine here.
func (r *postgresRepository) Search(ctx context.Context, q string) ([]article.ArticleWithAuthor, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles a
		JOIN users u ON a.author_id = u.id
		WHERE a.published = TRUE
		  AND (a.title ILIKE $1 OR a.excerpt ILIKE $1 OR a.content ILIKE $1 OR a.category ILIKE $1)
		ORDER BY a.created_at DESC
	`

	articles, err := r.queryArticles(ctx, query, "%"+escapeLike(q)+"%")
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return articles, nil
}

// escapeLike neutralizes LIKE metacharacters so user input matches
// literally, the way the in-memory store matches it. Backslash is the
// default ESCAPE character in Postgres.
func escapeLike(q string) string {
	return likeEscaper.Replace(q)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ========================================
// HELPERS
// ========================================

func (r *postgresRepository) queryArticles(ctx context.Context, query string, args ...any) ([]article.ArticleWithAuthor, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]article.ArticleWithAuthor, 0)
	for rows.Next() {
		a, err := scanArticleWithAuthor(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}

func scanArticleWithAuthor(row pgx.Row) (*article.ArticleWithAuthor, error) {
	var a article.ArticleWithAuthor
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Slug,
		&a.Excerpt,
		&a.Content,
		&a.Category,
		&a.ImageURL,
		&a.ImageCredit,
		&a.AuthorID,
		&a.Views,
		&a.Published,
		&a.Featured,
		&a.ScheduledAt,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.Author.ID,
		&a.Author.Username,
		&a.Author.FirstName,
		&a.Author.LastName,
		&a.Author.ProfileImageURL,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	_ = r.cache.Delete(ctx, listCacheKey)
}

func (r *postgresRepository) invalidateArticleCache(ctx context.Context, id uuid.UUID) {
	_ = r.cache.Delete(ctx, listCacheKey, fmt.Sprintf("article:%s", id.String()))
}
