package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain entity, mapped 1:1 to the users table.
type User struct {
	// Identity
	ID       uuid.UUID `db:"id" json:"id"`
	Username string    `db:"username" json:"username"`
	Email    string    `db:"email" json:"email"`

	// Authentication
	PasswordHash string `db:"password_hash" json:"-"` // Never expose in JSON

	// Profile
	FirstName       *string `db:"first_name" json:"firstName,omitempty"`
	LastName        *string `db:"last_name" json:"lastName,omitempty"`
	ProfileImageURL *string `db:"profile_image_url" json:"profileImageUrl,omitempty"`

	// Authorization
	Role Role `db:"role" json:"role"`

	// Timestamps
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Role enum
type Role string

const (
	RoleReader Role = "READER" // Browse and read only
	RoleAuthor Role = "AUTHOR" // Writes and manages own articles
	RoleAdmin  Role = "ADMIN"  // Full access, can manage any article
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{RoleReader, RoleAuthor, RoleAdmin}
}

// IsValid checks role validity
func (r Role) IsValid() bool {
	for _, role := range AllRoles() {
		if r == role {
			return true
		}
	}
	return false
}
