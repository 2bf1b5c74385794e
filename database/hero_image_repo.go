package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artifexgroup/artifex-site-backend/models"
)

type HeroImageRepo struct {
	db *gorm.DB
}

func NewHeroImageRepo(db *gorm.DB) *HeroImageRepo {
	return &HeroImageRepo{db}
}

// FindAll returns hero carousel images in display order. When activeOnly is
// set, images hidden from the public carousel are excluded.
func (r *HeroImageRepo) FindAll(activeOnly bool) ([]*models.HeroImage, error) {
	var images []*models.HeroImage
	query := r.db.Order("sort_order ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&images).Error
	return images, err
}

// FindByID returns a hero image by its ID, or nil if none exists
func (r *HeroImageRepo) FindByID(id uuid.UUID) (*models.HeroImage, error) {
	var image models.HeroImage
	err := r.db.First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Add inserts a new hero image into the database
func (r *HeroImageRepo) Add(image *models.HeroImage) error {
	return r.db.Create(image).Error
}

// Update persists changes to an existing hero image
func (r *HeroImageRepo) Update(image *models.HeroImage) error {
	return r.db.Save(image).Error
}

// Delete removes a hero image from the database by id
func (r *HeroImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.HeroImage{}, id).Error
}
