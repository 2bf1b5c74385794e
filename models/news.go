package models

import (
	"time"

	"github.com/google/uuid"
)

// News represents a publishable article with an ordered image gallery and an
// optional long-form rich-text body.
type News struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Content     *string   `json:"content,omitempty" db:"content" gorm:"type:text"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	// ImageURL mirrors the first gallery image for pre-gallery consumers.
	ImageURL  *string     `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	Published bool        `json:"published" db:"published" gorm:"not null;default:false"`
	Featured  bool        `json:"featured" db:"featured" gorm:"not null;default:false"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	AuthorID  uuid.UUID   `json:"authorId" db:"author_id" gorm:"type:uuid;not null"`
	Author    *User       `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Images    []NewsImage `json:"images,omitempty" gorm:"foreignKey:NewsID;references:ID;constraint:OnDelete:CASCADE"`
}

// NewsImage is a gallery image owned by a news article. Structurally identical
// to ProjectImage but kept in its own table so ownership stays unambiguous.
type NewsImage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	URL       string    `json:"url" db:"url" gorm:"type:text;not null"`
	FileName  string    `json:"fileName" db:"file_name" gorm:"type:text;not null"`
	FileSize  *int64    `json:"fileSize,omitempty" db:"file_size" gorm:"type:bigint"`
	MimeType  *string   `json:"mimeType,omitempty" db:"mime_type" gorm:"type:text"`
	Caption   *string   `json:"caption,omitempty" db:"caption" gorm:"type:text"`
	Order     int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
	NewsID    uuid.UUID `json:"newsId" db:"news_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
