package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artifexgroup/artifex-site-backend/models"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns all categories ordered alphabetically by name, each carrying
// a count of its published projects.
func (r *CategoryRepo) FindAll() ([]*models.Category, error) {
	var categories []*models.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	type categoryCount struct {
		CategoryID uuid.UUID
		Count      int64
	}
	var counts []categoryCount
	err := r.db.Model(&models.Project{}).
		Select("category_id, COUNT(*) AS count").
		Where("published = ? AND category_id IS NOT NULL", true).
		Group("category_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	countByID := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		countByID[c.CategoryID] = c.Count
	}
	for _, category := range categories {
		category.ProjectCount = countByID[category.ID]
	}

	return categories, nil
}

// SlugExists reports whether any category already uses the given slug.
func (r *CategoryRepo) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Add inserts a new category into the database
func (r *CategoryRepo) Add(category *models.Category) error {
	return r.db.Create(category).Error
}
