package models

import (
	"time"

	"github.com/google/uuid"
)

// HeroImage is a homepage carousel background. Active images are shown in
// ascending order; inactive ones are kept for the admin dashboard only.
type HeroImage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	URL       string    `json:"url" db:"url" gorm:"type:text;not null"`
	FileName  string    `json:"fileName" db:"file_name" gorm:"type:text;not null"`
	S3Key     *string   `json:"s3Key,omitempty" db:"s3_key" gorm:"type:text"`
	FileSize  *int64    `json:"fileSize,omitempty" db:"file_size" gorm:"type:bigint"`
	MimeType  *string   `json:"mimeType,omitempty" db:"mime_type" gorm:"type:text"`
	Order     int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
	Active    bool      `json:"active" db:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// SectionImage is a photo shown in the "who we are" section. Same lifecycle
// as HeroImage.
type SectionImage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	URL       string    `json:"url" db:"url" gorm:"type:text;not null"`
	FileName  string    `json:"fileName" db:"file_name" gorm:"type:text;not null"`
	S3Key     *string   `json:"s3Key,omitempty" db:"s3_key" gorm:"type:text"`
	FileSize  *int64    `json:"fileSize,omitempty" db:"file_size" gorm:"type:bigint"`
	MimeType  *string   `json:"mimeType,omitempty" db:"mime_type" gorm:"type:text"`
	Order     int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
	Active    bool      `json:"active" db:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
