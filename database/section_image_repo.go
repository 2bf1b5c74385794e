package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artifexgroup/artifex-site-backend/models"
)

type SectionImageRepo struct {
	db *gorm.DB
}

func NewSectionImageRepo(db *gorm.DB) *SectionImageRepo {
	return &SectionImageRepo{db}
}

// FindAll returns section images in display order, optionally active-only.
func (r *SectionImageRepo) FindAll(activeOnly bool) ([]*models.SectionImage, error) {
	var images []*models.SectionImage
	query := r.db.Order("sort_order ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&images).Error
	return images, err
}

// FindByID returns a section image by its ID, or nil if none exists
func (r *SectionImageRepo) FindByID(id uuid.UUID) (*models.SectionImage, error) {
	var image models.SectionImage
	err := r.db.First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Add inserts a new section image into the database
func (r *SectionImageRepo) Add(image *models.SectionImage) error {
	return r.db.Create(image).Error
}

// Update persists changes to an existing section image
func (r *SectionImageRepo) Update(image *models.SectionImage) error {
	return r.db.Save(image).Error
}

// Delete removes a section image from the database by id
func (r *SectionImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SectionImage{}, id).Error
}
