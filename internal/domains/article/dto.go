package article

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// REQUEST DTOs
// ========================================

// CreateArticleRequest carries the editor payload for a new article.
// The slug is never accepted from the client, it is derived from the title.
type CreateArticleRequest struct {
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	ImageCredit string     `json:"imageCredit,omitempty"`
	Published   bool       `json:"published"`
	Featured    bool       `json:"featured"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200).Error("title must be at most 200 characters"),
		),
		validation.Field(&r.Excerpt,
			validation.Required.Error("excerpt is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.By(categoryRule),
		),
		validation.Field(&r.ImageURL,
			validation.When(r.ImageURL != "", is.URL.Error("image must be a valid URL")),
		),
	)
}

// UpdateArticleRequest carries a partial update. Pointer fields
// distinguish "not sent" from "set to zero value".
type UpdateArticleRequest struct {
	Title       *string    `json:"title,omitempty"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Content     *string    `json:"content,omitempty"`
	Category    *string    `json:"category,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	ImageCredit *string    `json:"imageCredit,omitempty"`
	Published   *bool      `json:"published,omitempty"`
	Featured    *bool      `json:"featured,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil,
				validation.Required.Error("title cannot be empty"),
				validation.Length(1, 200),
			),
		),
		validation.Field(&r.Excerpt,
			validation.When(r.Excerpt != nil,
				validation.Required.Error("excerpt cannot be empty"),
				validation.Length(1, 500),
			),
		),
		validation.Field(&r.Content,
			validation.When(r.Content != nil, validation.Required.Error("content cannot be empty")),
		),
		validation.Field(&r.Category,
			validation.When(r.Category != nil, validation.By(categoryRule)),
		),
	)
}

// categoryRule accepts string or *string since ozzo may pass either
// depending on the field type.
func categoryRule(value interface{}) error {
	var cat string
	switch v := value.(type) {
	case string:
		cat = v
	case *string:
		if v == nil {
			return nil
		}
		cat = *v
	default:
		return nil
	}
	if !IsValidCategory(cat) {
		return ErrInvalidCategory
	}
	return nil
}
