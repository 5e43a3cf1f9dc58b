package article

import (
	"time"

	"github.com/google/uuid"
)

// Article is the domain entity, mapped 1:1 to the articles table.
type Article struct {
	// Identity
	ID    uuid.UUID `db:"id" json:"id"`
	Title string    `db:"title" json:"title"`
	Slug  string    `db:"slug" json:"slug"` // Derived from title, unique

	// Content
	Excerpt     string  `db:"excerpt" json:"excerpt"`
	Content     string  `db:"content" json:"content"`
	Category    string  `db:"category" json:"category"`
	ImageURL    *string `db:"image_url" json:"imageUrl,omitempty"`
	ImageCredit *string `db:"image_credit" json:"imageCredit,omitempty"`

	// Ownership
	AuthorID uuid.UUID `db:"author_id" json:"authorId"`

	// Visibility
	Views       int        `db:"views" json:"views"`
	Published   bool       `db:"published" json:"published"`
	Featured    bool       `db:"featured" json:"featured"`
	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduledAt,omitempty"`

	// Timestamps
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Author is the byline projection joined onto article reads.
type Author struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
}

// ArticleWithAuthor is what list and detail endpoints return.
type ArticleWithAuthor struct {
	Article
	Author Author `json:"author"`
}

// Categories accepted by the editor. Covers every league the site
// publishes, including the seed content.
var Categories = []string{"NHL", "NBA", "NFL", "MLB", "Soccer", "F1", "ATP"}

// IsValidCategory checks a category against the editor list.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
