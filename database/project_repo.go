package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artifexgroup/artifex-site-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// orderedImages preloads the gallery in display order.
func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// FindAll returns all projects newest-first, with category and ordered images
// eagerly attached. The admin dashboard uses this view.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Preload("Author").
		Preload("Category").
		Preload("Images", orderedImages).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindAllPublished returns only published projects, featured first and then
// newest first, for the public gallery.
func (r *ProjectRepo) FindAllPublished() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Preload("Category").
		Preload("Images", orderedImages).
		Where("published = ?", true).
		Order("featured DESC, created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil if no such project exists
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Author").
		Preload("Category").
		Preload("Images", orderedImages).
		First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug returns a published project by slug, or nil if none matches.
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Category").
		Preload("Images", orderedImages).
		Where("slug = ? AND published = ?", slug, true).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// SlugExists reports whether a project other than excludeID already uses the
// given slug. Pass uuid.Nil on create.
func (r *ProjectRepo) SlugExists(slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Model(&models.Project{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Add inserts a new project and its gallery in a single transaction. Image
// rows land with whatever dense order values the caller assigned.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update persists the project's scalar fields. When images is non-nil the
// entire gallery is replaced: every existing image row is deleted and the
// submitted list inserted in its place. Both steps share one transaction so a
// failed insert rolls the gallery back to its prior state.
func (r *ProjectRepo) Update(project *models.Project, images []models.ProjectImage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(project).Error; err != nil {
			return err
		}
		if images == nil {
			return nil
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].ProjectID = project.ID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a project by id. Owned image rows cascade.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}
