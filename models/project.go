package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a publishable portfolio entry with an ordered image gallery.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	// ImageURL mirrors the first gallery image for pre-gallery consumers.
	ImageURL   *string        `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	Published  bool           `json:"published" db:"published" gorm:"not null;default:false"`
	Featured   bool           `json:"featured" db:"featured" gorm:"not null;default:false"`
	CreatedAt  time.Time      `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time      `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	AuthorID   uuid.UUID      `json:"authorId" db:"author_id" gorm:"type:uuid;not null"`
	Author     *User          `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	CategoryID *uuid.UUID     `json:"categoryId,omitempty" db:"category_id" gorm:"type:uuid"`
	Category   *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Images     []ProjectImage `json:"images,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// ProjectImage is a gallery image owned by a project. Order is a dense
// zero-based sequence expressing display position.
type ProjectImage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	URL       string    `json:"url" db:"url" gorm:"type:text;not null"`
	FileName  string    `json:"fileName" db:"file_name" gorm:"type:text;not null"`
	FileSize  *int64    `json:"fileSize,omitempty" db:"file_size" gorm:"type:bigint"`
	MimeType  *string   `json:"mimeType,omitempty" db:"mime_type" gorm:"type:text"`
	Caption   *string   `json:"caption,omitempty" db:"caption" gorm:"type:text"`
	Order     int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
