package api

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/artifexgroup/artifex-site-backend/models"
	"github.com/artifexgroup/artifex-site-backend/services"
)

type mockProjectStore struct {
	mock.Mock
}

func (m *mockProjectStore) FindAll() ([]*models.Project, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}

func (m *mockProjectStore) FindAllPublished() ([]*models.Project, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}

func (m *mockProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *mockProjectStore) FindBySlug(slug string) (*models.Project, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *mockProjectStore) SlugExists(slug string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockProjectStore) Add(project *models.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *mockProjectStore) Update(project *models.Project, images []models.ProjectImage) error {
	args := m.Called(project, images)
	return args.Error(0)
}

func (m *mockProjectStore) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockNewsStore struct {
	mock.Mock
}

func (m *mockNewsStore) FindAll(publishedOnly bool) ([]*models.News, error) {
	args := m.Called(publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.News), args.Error(1)
}

func (m *mockNewsStore) FindByID(id uuid.UUID) (*models.News, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *mockNewsStore) FindBySlug(slug string) (*models.News, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *mockNewsStore) SlugExists(slug string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockNewsStore) Add(news *models.News) error {
	args := m.Called(news)
	return args.Error(0)
}

func (m *mockNewsStore) Update(news *models.News, images []models.NewsImage) error {
	args := m.Called(news, images)
	return args.Error(0)
}

func (m *mockNewsStore) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) FindAll() ([]*models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *mockCategoryStore) SlugExists(slug string) (bool, error) {
	args := m.Called(slug)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryStore) Add(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockHeroImageStore struct {
	mock.Mock
}

func (m *mockHeroImageStore) FindAll(activeOnly bool) ([]*models.HeroImage, error) {
	args := m.Called(activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.HeroImage), args.Error(1)
}

func (m *mockHeroImageStore) FindByID(id uuid.UUID) (*models.HeroImage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HeroImage), args.Error(1)
}

func (m *mockHeroImageStore) Add(image *models.HeroImage) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *mockHeroImageStore) Update(image *models.HeroImage) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *mockHeroImageStore) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockSectionImageStore struct {
	mock.Mock
}

func (m *mockSectionImageStore) FindAll(activeOnly bool) ([]*models.SectionImage, error) {
	args := m.Called(activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SectionImage), args.Error(1)
}

func (m *mockSectionImageStore) FindByID(id uuid.UUID) (*models.SectionImage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SectionImage), args.Error(1)
}

func (m *mockSectionImageStore) Add(image *models.SectionImage) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *mockSectionImageStore) Update(image *models.SectionImage) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *mockSectionImageStore) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockObjectStorage struct {
	mock.Mock
}

func (m *mockObjectStorage) Upload(ctx context.Context, fileName, contentType string, body io.Reader, size int64) (*services.UploadResult, error) {
	args := m.Called(ctx, fileName, contentType, body, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.UploadResult), args.Error(1)
}

func (m *mockObjectStorage) Delete(ctx context.Context, keyOrURL string) error {
	args := m.Called(ctx, keyOrURL)
	return args.Error(0)
}

type mockEmailSender struct {
	mock.Mock
}

func (m *mockEmailSender) SendContactNotification(ctx context.Context, name, email, message string) error {
	args := m.Called(ctx, name, email, message)
	return args.Error(0)
}
