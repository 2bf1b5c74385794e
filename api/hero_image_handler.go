package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/artifexgroup/artifex-site-backend/errs"
	"github.com/artifexgroup/artifex-site-backend/models"
)

type heroImageHandler struct {
	responder     Responder
	logger        zerolog.Logger
	heroImageRepo HeroImageStore
	storage       ObjectStorage
}

func newHeroImageHandler(heroImageRepo HeroImageStore, storage ObjectStorage) heroImageHandler {
	logger := log.With().Str("handlerName", "heroImageHandler").Logger()

	return heroImageHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		heroImageRepo: heroImageRepo,
		storage:       storage,
	}
}

// CreateSiteImageRequest is the payload for adding a hero or section image.
type CreateSiteImageRequest struct {
	ImageURL string  `json:"imageUrl"`
	FileName *string `json:"fileName,omitempty"`
	FileSize *int64  `json:"fileSize,omitempty"`
	MimeType *string `json:"mimeType,omitempty"`
	S3Key    *string `json:"s3Key,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

// UpdateSiteImageRequest is a patch payload for a hero or section image.
type UpdateSiteImageRequest struct {
	ImageURL *string `json:"imageUrl,omitempty"`
	Order    *int    `json:"order,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// fileNameFromURL derives a display file name from the URL's last path segment.
func fileNameFromURL(url, fallback string) string {
	trimmed := strings.TrimRight(url, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 && idx+1 < len(trimmed) {
		return trimmed[idx+1:]
	}
	return fallback
}

// getHeroImages lists carousel images in display order (?all=true includes inactive)
// @Summary Get hero images
// @Tags Site Images
// @Produce json
// @Param all query bool false "Include inactive images"
// @Success 200 {array} models.HeroImage "List of hero images"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /hero-images [get]
func (h heroImageHandler) getHeroImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly := r.URL.Query().Get("all") != "true"

		images, err := h.heroImageRepo.FindAll(activeOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find hero images", "hero image", err))
			return
		}

		h.responder.WriteJSON(w, images)
	}
}

// createHeroImage registers an uploaded image as a carousel entry
// @Summary Create hero image
// @Tags Site Images
// @Accept json
// @Produce json
// @Param image body CreateSiteImageRequest true "Hero image data"
// @Success 201 {object} models.HeroImage "Created hero image"
// @Failure 400 {object} ErrorResponse "Bad Request - imageUrl missing"
// @Router /hero-image [post]
func (h heroImageHandler) createHeroImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSiteImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.ImageURL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("imageUrl"))
			return
		}

		fileName := fileNameFromURL(req.ImageURL, "hero-image")
		if req.FileName != nil && *req.FileName != "" {
			fileName = *req.FileName
		}

		order := 0
		if req.Order != nil {
			order = *req.Order
		}

		image := models.HeroImage{
			URL:      req.ImageURL,
			FileName: fileName,
			S3Key:    req.S3Key,
			FileSize: req.FileSize,
			MimeType: req.MimeType,
			Order:    order,
			Active:   true,
		}

		if err := h.heroImageRepo.Add(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create hero image", "hero image", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, image)
	}
}

// updateHeroImage patches a carousel entry's url, order, or visibility
// @Summary Update hero image
// @Tags Site Images
// @Accept json
// @Produce json
// @Param heroImageID path string true "Hero image ID" format(uuid)
// @Param image body UpdateSiteImageRequest true "Hero image patch"
// @Success 200 {object} models.HeroImage "Updated hero image"
// @Failure 404 {object} ErrorResponse "Not Found - Hero image not found"
// @Router /hero-image/{heroImageID} [put]
func (h heroImageHandler) updateHeroImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "heroImageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid heroImageID"))
			return
		}

		existing, err := h.heroImageRepo.FindByID(imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find hero image", "hero image", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("hero image"))
			return
		}

		var req UpdateSiteImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.ImageURL != nil {
			existing.URL = *req.ImageURL
		}
		if req.Order != nil {
			existing.Order = *req.Order
		}
		if req.IsActive != nil {
			existing.Active = *req.IsActive
		}

		if err := h.heroImageRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update hero image", "hero image", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteHeroImage removes a carousel entry, then best-effort deletes the
// stored object; a storage failure never blocks the catalog deletion.
// @Summary Delete hero image
// @Tags Site Images
// @Produce json
// @Param heroImageID path string true "Hero image ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Hero image not found"
// @Router /hero-image/{heroImageID} [delete]
func (h heroImageHandler) deleteHeroImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "heroImageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid heroImageID"))
			return
		}

		existing, err := h.heroImageRepo.FindByID(imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find hero image", "hero image", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("hero image"))
			return
		}

		if err := h.heroImageRepo.Delete(imageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete hero image", "hero image", err))
			return
		}

		if h.storage != nil && existing.S3Key != nil {
			if err := h.storage.Delete(r.Context(), *existing.S3Key); err != nil {
				h.logger.Warn().Err(err).Str("key", *existing.S3Key).Msg("best-effort storage delete failed")
			}
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "hero image deleted successfully",
		})
	}
}
