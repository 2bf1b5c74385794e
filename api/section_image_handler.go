package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/artifexgroup/artifex-site-backend/errs"
	"github.com/artifexgroup/artifex-site-backend/models"
)

// sectionImageHandler manages the "who we are" section photos. Same lifecycle
// as the hero carousel, separate table and endpoints.
type sectionImageHandler struct {
	responder        Responder
	logger           zerolog.Logger
	sectionImageRepo SectionImageStore
	storage          ObjectStorage
}

func newSectionImageHandler(sectionImageRepo SectionImageStore, storage ObjectStorage) sectionImageHandler {
	logger := log.With().Str("handlerName", "sectionImageHandler").Logger()

	return sectionImageHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		sectionImageRepo: sectionImageRepo,
		storage:          storage,
	}
}

// getSectionImages lists section images in display order (?all=true includes inactive)
func (h sectionImageHandler) getSectionImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly := r.URL.Query().Get("all") != "true"

		images, err := h.sectionImageRepo.FindAll(activeOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find section images", "section image", err))
			return
		}

		h.responder.WriteJSON(w, images)
	}
}

// createSectionImage registers an uploaded image as a section entry
func (h sectionImageHandler) createSectionImage() http.HandlerFunc {
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

		fileName := fileNameFromURL(req.ImageURL, "section-image")
		if req.FileName != nil && *req.FileName != "" {
			fileName = *req.FileName
		}

		order := 0
		if req.Order != nil {
			order = *req.Order
		}

		image := models.SectionImage{
			URL:      req.ImageURL,
			FileName: fileName,
			S3Key:    req.S3Key,
			FileSize: req.FileSize,
			MimeType: req.MimeType,
			Order:    order,
			Active:   true,
		}

		if err := h.sectionImageRepo.Add(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create section image", "section image", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, image)
	}
}

// updateSectionImage patches a section entry's url, order, or visibility
func (h sectionImageHandler) updateSectionImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "sectionImageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid sectionImageID"))
			return
		}

		existing, err := h.sectionImageRepo.FindByID(imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find section image", "section image", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("section image"))
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

		if err := h.sectionImageRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update section image", "section image", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteSectionImage removes a section entry with best-effort storage cleanup
func (h sectionImageHandler) deleteSectionImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "sectionImageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid sectionImageID"))
			return
		}

		existing, err := h.sectionImageRepo.FindByID(imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find section image", "section image", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("section image"))
			return
		}

		if err := h.sectionImageRepo.Delete(imageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete section image", "section image", err))
			return
		}

		if h.storage != nil && existing.S3Key != nil {
			if err := h.storage.Delete(r.Context(), *existing.S3Key); err != nil {
				h.logger.Warn().Err(err).Str("key", *existing.S3Key).Msg("best-effort storage delete failed")
			}
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "section image deleted successfully",
		})
	}
}
