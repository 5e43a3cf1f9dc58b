package article

import "errors"

// Repository-level errors
var (
	ErrArticleNotFound   = errors.New("article not found")
	ErrSlugAlreadyExists = errors.New("an article with this title already exists")
	ErrAuthorNotFound    = errors.New("author not found")
)

// Service-level (business logic) errors
var (
	ErrNotOwner        = errors.New("you can only modify your own articles")
	ErrInvalidCategory = errors.New("invalid category")
)
