package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/artifexgroup/artifex-site-backend/errs"
)

// maxUploadSize caps image uploads at 10MB.
const maxUploadSize = 10 * 1024 * 1024

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   ObjectStorage
}

func newUploadHandler(storage ObjectStorage) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

// upload streams an image to object storage and returns the metadata tuple
// the catalog stores. The catalog itself never sees the bytes.
// @Summary Upload image
// @Description Accepts a multipart image up to 10MB, stores it, and returns its URL and metadata
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} services.UploadResult "Uploaded file metadata"
// @Failure 400 {object} ErrorResponse "Bad Request - No file provided"
// @Failure 413 {object} ErrorResponse "Payload Too Large"
// @Failure 415 {object} ErrorResponse "Unsupported Media Type - Not an image"
// @Router /upload [post]
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.storage == nil {
			h.responder.WriteError(w, errs.NewServiceUnavailableError("object storage", nil))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxUploadSize))
				return
			}
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart form", err))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			h.responder.WriteError(w, errs.NewUnsupportedMediaTypeError(contentType, []string{"image/*"}))
			return
		}

		result, err := h.storage.Upload(r.Context(), header.Filename, contentType, file, header.Size)
		if err != nil {
			h.logger.Error().Err(err).Str("fileName", header.Filename).Msg("upload failed")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"url":      result.URL,
			"key":      result.Key,
			"fileName": result.FileName,
			"fileSize": result.FileSize,
			"mimeType": result.MimeType,
		})
	}
}
