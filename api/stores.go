package api

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/artifexgroup/artifex-site-backend/models"
	"github.com/artifexgroup/artifex-site-backend/services"
)

// Store interfaces consumed by the handlers. The database package's concrete
// repositories satisfy them; tests substitute mocks.

type ProjectStore interface {
	FindAll() ([]*models.Project, error)
	FindAllPublished() ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	FindBySlug(slug string) (*models.Project, error)
	SlugExists(slug string, excludeID uuid.UUID) (bool, error)
	Add(project *models.Project) error
	Update(project *models.Project, images []models.ProjectImage) error
	Delete(id uuid.UUID) error
}

type NewsStore interface {
	FindAll(publishedOnly bool) ([]*models.News, error)
	FindByID(id uuid.UUID) (*models.News, error)
	FindBySlug(slug string) (*models.News, error)
	SlugExists(slug string, excludeID uuid.UUID) (bool, error)
	Add(news *models.News) error
	Update(news *models.News, images []models.NewsImage) error
	Delete(id uuid.UUID) error
}

type CategoryStore interface {
	FindAll() ([]*models.Category, error)
	SlugExists(slug string) (bool, error)
	Add(category *models.Category) error
}

type UserStore interface {
	FindByID(id uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
}

type HeroImageStore interface {
	FindAll(activeOnly bool) ([]*models.HeroImage, error)
	FindByID(id uuid.UUID) (*models.HeroImage, error)
	Add(image *models.HeroImage) error
	Update(image *models.HeroImage) error
	Delete(id uuid.UUID) error
}

type SectionImageStore interface {
	FindAll(activeOnly bool) ([]*models.SectionImage, error)
	FindByID(id uuid.UUID) (*models.SectionImage, error)
	Add(image *models.SectionImage) error
	Update(image *models.SectionImage) error
	Delete(id uuid.UUID) error
}

// ObjectStorage is the boundary to the external blob store. The catalog only
// ever consumes the returned metadata, never the bytes.
type ObjectStorage interface {
	Upload(ctx context.Context, fileName, contentType string, body io.Reader, size int64) (*services.UploadResult, error)
	Delete(ctx context.Context, keyOrURL string) error
}

// EmailSender is the boundary to the transactional-mail provider.
type EmailSender interface {
	SendContactNotification(ctx context.Context, name, email, message string) error
}
