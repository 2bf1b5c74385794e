package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles assignable to a User.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User represents a catalog user. Administrators author projects and news.
type User struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Password  *string   `json:"-" db:"password" gorm:"type:text"`
	Role      string    `json:"role" db:"role" gorm:"type:text;not null;default:USER"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// AuthorRef is the subset of User embedded in project and news responses.
type AuthorRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Ref returns the author projection of the user.
func (u User) Ref() AuthorRef {
	return AuthorRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
