package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artifexgroup/artifex-site-backend/models"
)

func newHeroImageTestRouter(store *mockHeroImageStore, storage ObjectStorage) *chi.Mux {
	handler := newHeroImageHandler(store, storage)

	r := chi.NewRouter()
	r.Get("/hero-images", handler.getHeroImages())
	r.Post("/hero-image", handler.createHeroImage())
	r.Put("/hero-image/{heroImageID}", handler.updateHeroImage())
	r.Delete("/hero-image/{heroImageID}", handler.deleteHeroImage())
	return r
}

func TestGetHeroImages_ActiveFilter(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		activeOnly bool
	}{
		{"default hides inactive", "/hero-images", true},
		{"all includes inactive", "/hero-images?all=true", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockHeroImageStore)
			router := newHeroImageTestRouter(store, nil)
			store.On("FindAll", tt.activeOnly).Return([]*models.HeroImage{}, nil)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			store.AssertExpectations(t)
		})
	}
}

func TestCreateHeroImage(t *testing.T) {
	store := new(mockHeroImageStore)
	router := newHeroImageTestRouter(store, nil)

	var created *models.HeroImage
	store.On("Add", mock.AnythingOfType("*models.HeroImage")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.HeroImage)
	}).Return(nil)

	body, _ := json.Marshal(CreateSiteImageRequest{
		ImageURL: "https://bucket.s3.us-east-1.amazonaws.com/projects/1-hero.jpg",
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hero-image", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.NotNil(t, created)
	// File name falls back to the URL's last path segment; new images start active
	assert.Equal(t, "1-hero.jpg", created.FileName)
	assert.True(t, created.Active)
	assert.Equal(t, 0, created.Order)
}

func TestCreateHeroImage_MissingURL(t *testing.T) {
	store := new(mockHeroImageStore)
	router := newHeroImageTestRouter(store, nil)

	body, _ := json.Marshal(CreateSiteImageRequest{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hero-image", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "Add", mock.Anything)
}

func TestUpdateHeroImage(t *testing.T) {
	store := new(mockHeroImageStore)
	router := newHeroImageTestRouter(store, nil)

	imageID := uuid.New()
	existing := &models.HeroImage{ID: imageID, URL: "https://cdn.example.com/h.jpg", Active: true, Order: 0}
	store.On("FindByID", imageID).Return(existing, nil)
	store.On("Update", existing).Return(nil)

	newOrder := 3
	inactive := false
	body, _ := json.Marshal(UpdateSiteImageRequest{Order: &newOrder, IsActive: &inactive})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/hero-image/"+imageID.String(), bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, existing.Order)
	assert.False(t, existing.Active)
}

func TestDeleteHeroImage_RemovesStoredObject(t *testing.T) {
	store := new(mockHeroImageStore)
	storage := new(mockObjectStorage)
	router := newHeroImageTestRouter(store, storage)

	imageID := uuid.New()
	key := "projects/1-hero.jpg"
	store.On("FindByID", imageID).Return(&models.HeroImage{ID: imageID, S3Key: &key}, nil)
	store.On("Delete", imageID).Return(nil)
	storage.On("Delete", mock.Anything, key).Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/hero-image/"+imageID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	store.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestDeleteHeroImage_StorageFailureDoesNotBlock(t *testing.T) {
	store := new(mockHeroImageStore)
	storage := new(mockObjectStorage)
	router := newHeroImageTestRouter(store, storage)

	imageID := uuid.New()
	key := "projects/1-hero.jpg"
	store.On("FindByID", imageID).Return(&models.HeroImage{ID: imageID, S3Key: &key}, nil)
	store.On("Delete", imageID).Return(nil)
	storage.On("Delete", mock.Anything, key).Return(errors.New("s3 unreachable"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/hero-image/"+imageID.String(), nil))

	// Catalog row removal already succeeded, so the request succeeds
	assert.Equal(t, http.StatusOK, rec.Code)
}
