package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artifexgroup/artifex-site-backend/models"
)

type NewsRepo struct {
	db *gorm.DB
}

func NewNewsRepo(db *gorm.DB) *NewsRepo {
	return &NewsRepo{db}
}

// FindAll returns news articles newest-first with author and ordered images.
// When publishedOnly is set, unpublished articles are filtered out.
func (r *NewsRepo) FindAll(publishedOnly bool) ([]*models.News, error) {
	var news []*models.News
	query := r.db.
		Preload("Author").
		Preload("Images", orderedImages).
		Order("created_at DESC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	err := query.Find(&news).Error
	return news, err
}

// FindByID returns a news article by its ID, or nil if none exists
func (r *NewsRepo) FindByID(id uuid.UUID) (*models.News, error) {
	var news models.News
	err := r.db.
		Preload("Author").
		Preload("Images", orderedImages).
		First(&news, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// FindBySlug returns a published news article by slug, or nil if none matches.
func (r *NewsRepo) FindBySlug(slug string) (*models.News, error) {
	var news models.News
	err := r.db.
		Preload("Author").
		Preload("Images", orderedImages).
		Where("slug = ? AND published = ?", slug, true).
		First(&news).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// SlugExists reports whether a news article other than excludeID already uses
// the given slug. Pass uuid.Nil on create.
func (r *NewsRepo) SlugExists(slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Model(&models.News{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Add inserts a new news article and its gallery in a single transaction.
func (r *NewsRepo) Add(news *models.News) error {
	return r.db.Create(news).Error
}

// Update persists the article's scalar fields. A non-nil images slice replaces
// the entire gallery atomically; nil leaves the existing gallery untouched.
func (r *NewsRepo) Update(news *models.News, images []models.NewsImage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(news).Error; err != nil {
			return err
		}
		if images == nil {
			return nil
		}
		if err := tx.Where("news_id = ?", news.ID).Delete(&models.NewsImage{}).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].NewsID = news.ID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a news article by id. Owned image rows cascade.
func (r *NewsRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("news_id = ?", id).Delete(&models.NewsImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.News{}, id).Error
	})
}
