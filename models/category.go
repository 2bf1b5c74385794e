package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups projects. A project has at most one category.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	Projects    []Project `json:"projects,omitempty" gorm:"foreignKey:CategoryID;references:ID"`

	// ProjectCount is the number of published projects in the category.
	// Populated by the repository, never persisted.
	ProjectCount int64 `json:"projectCount" gorm:"-"`
}
