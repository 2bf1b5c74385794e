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
	"github.com/artifexgroup/artifex-site-backend/slug"
)

type newsHandler struct {
	responder Responder
	logger    zerolog.Logger
	newsRepo  NewsStore
}

func newNewsHandler(newsRepo NewsStore) newsHandler {
	logger := log.With().Str("handlerName", "newsHandler").Logger()

	return newsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		newsRepo:  newsRepo,
	}
}

// CreateNewsRequest is the payload for creating a news article.
type CreateNewsRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Content     *string      `json:"content,omitempty"`
	Published   bool         `json:"published"`
	Featured    bool         `json:"featured"`
	Images      []ImageInput `json:"images,omitempty"`
}

// UpdateNewsRequest is a patch payload. A nil field is left untouched; a
// present field overwrites. A present empty image list deletes the gallery.
type UpdateNewsRequest struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Content     *string       `json:"content,omitempty"`
	Published   *bool         `json:"published,omitempty"`
	Featured    *bool         `json:"featured,omitempty"`
	Images      *[]ImageInput `json:"images,omitempty"`
}

func newsImagesFromInput(inputs []ImageInput) []models.NewsImage {
	images := make([]models.NewsImage, len(inputs))
	for i, in := range inputs {
		images[i] = models.NewsImage{
			URL:      in.URL,
			FileName: in.FileName,
			FileSize: in.FileSize,
			MimeType: in.MimeType,
			Caption:  in.Caption,
			Order:    i,
		}
	}
	return images
}

// getAllNews lists news articles. Without query parameters only published
// articles are returned; ?all=true returns everything for the dashboard.
// @Summary Get news articles
// @Tags News
// @Produce json
// @Param all query bool false "Include unpublished articles"
// @Param published query bool false "Published articles only (the default)"
// @Success 200 {array} models.News "List of news articles"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /news [get]
func (h newsHandler) getAllNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publishedOnly := true
		if r.URL.Query().Get("published") == "true" {
			publishedOnly = true
		} else if r.URL.Query().Get("all") == "true" {
			publishedOnly = false
		}

		news, err := h.newsRepo.FindAll(publishedOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find news", "news article", err))
			return
		}

		h.responder.WriteJSON(w, news)
	}
}

// getPublishedNews lists published articles newest-first for the public site.
// @Summary Get published news
// @Tags News
// @Produce json
// @Success 200 {array} models.News "List of published news articles"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /news/published [get]
func (h newsHandler) getPublishedNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		news, err := h.newsRepo.FindAll(true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find published news", "news article", err))
			return
		}

		h.responder.WriteJSON(w, news)
	}
}

// getNews retrieves a specific news article by ID
// @Summary Get news article
// @Tags News
// @Produce json
// @Param newsID path string true "News ID" format(uuid)
// @Success 200 {object} models.News "News article details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid newsID"
// @Failure 404 {object} ErrorResponse "Not Found - News article not found"
// @Router /news-item/{newsID} [get]
func (h newsHandler) getNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		newsID, err := uuid.Parse(chi.URLParam(r, "newsID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid newsID"))
			return
		}

		news, err := h.newsRepo.FindByID(newsID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find news", "news article", err))
			return
		}
		if news == nil {
			h.responder.WriteError(w, errs.NewNotFound("news article"))
			return
		}

		h.responder.WriteJSON(w, news)
	}
}

// getNewsBySlug resolves a published news article by its slug
// @Summary Get published news article by slug
// @Tags News
// @Produce json
// @Param slug path string true "News slug"
// @Success 200 {object} models.News "News article details"
// @Failure 404 {object} ErrorResponse "Not Found - News article not found"
// @Router /news/slug/{slug} [get]
func (h newsHandler) getNewsBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		news, err := h.newsRepo.FindBySlug(chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find news by slug", "news article", err))
			return
		}
		if news == nil {
			h.responder.WriteError(w, errs.NewNotFound("news article"))
			return
		}

		h.responder.WriteJSON(w, news)
	}
}

// createNews creates a new news article with its gallery
// @Summary Create news article
// @Description Creates a news article; the title-derived slug must be unique
// @Tags News
// @Accept json
// @Produce json
// @Param news body CreateNewsRequest true "News data"
// @Success 201 {object} models.News "Created news article"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid news data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Conflict - An article with this title already exists"
// @Router /news-item [post]
func (h newsHandler) createNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req CreateNewsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode news request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Description == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("description"))
			return
		}

		newsSlug := slug.Make(req.Title)
		if newsSlug == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("title", "title must contain at least one letter or digit"))
			return
		}

		taken, err := h.newsRepo.SlugExists(newsSlug, uuid.Nil)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check news slug", "news article", err))
			return
		}
		if taken {
			h.responder.WriteError(w, errs.NewSlugTaken("news article"))
			return
		}

		news := models.News{
			Title:       req.Title,
			Description: req.Description,
			Content:     req.Content,
			Slug:        newsSlug,
			Published:   req.Published,
			Featured:    req.Featured,
			AuthorID:    authorID,
			Images:      newsImagesFromInput(req.Images),
		}
		if len(req.Images) > 0 {
			news.ImageURL = &req.Images[0].URL
		}

		if err := h.newsRepo.Add(&news); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create news", "news article", err))
			return
		}

		createdNews, err := h.newsRepo.FindByID(news.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created news", "news article", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, createdNews)
	}
}

// updateNews updates an existing news article
// @Summary Update news article
// @Description Applies a patch; a title change re-derives the slug and re-checks
// uniqueness excluding this article; a supplied image list replaces the gallery
// @Tags News
// @Accept json
// @Produce json
// @Param newsID path string true "News ID" format(uuid)
// @Param news body UpdateNewsRequest true "News patch"
// @Success 200 {object} models.News "Updated news article"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid news data"
// @Failure 404 {object} ErrorResponse "Not Found - News article not found"
// @Failure 409 {object} ErrorResponse "Conflict - An article with this title already exists"
// @Router /news-item/{newsID} [put]
func (h newsHandler) updateNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		newsID, err := uuid.Parse(chi.URLParam(r, "newsID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid newsID"))
			return
		}

		existing, err := h.newsRepo.FindByID(newsID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find news", "news article", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("news article"))
			return
		}

		var req UpdateNewsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode news request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Title != nil {
			newsSlug := slug.Make(*req.Title)
			if newsSlug == "" {
				h.responder.WriteError(w, errs.NewInvalidFieldError("title", "title must contain at least one letter or digit"))
				return
			}

			// Re-deriving the same slug for the same record is allowed; only a
			// different record holding it is a conflict.
			taken, err := h.newsRepo.SlugExists(newsSlug, newsID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("check news slug", "news article", err))
				return
			}
			if taken {
				h.responder.WriteError(w, errs.NewSlugTaken("news article"))
				return
			}

			existing.Title = *req.Title
			existing.Slug = newsSlug
		}
		if req.Description != nil {
			existing.Description = *req.Description
		}
		if req.Content != nil {
			existing.Content = req.Content
		}
		if req.Published != nil {
			existing.Published = *req.Published
		}
		if req.Featured != nil {
			existing.Featured = *req.Featured
		}

		var images []models.NewsImage
		if req.Images != nil {
			images = newsImagesFromInput(*req.Images)
			if len(images) > 0 {
				existing.ImageURL = &images[0].URL
			} else {
				existing.ImageURL = nil
			}
		}
		existing.Images = nil
		existing.Author = nil

		if err := h.newsRepo.Update(existing, images); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update news", "news article", err))
			return
		}

		updatedNews, err := h.newsRepo.FindByID(newsID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated news", "news article", err))
			return
		}

		h.responder.WriteJSON(w, updatedNews)
	}
}

// deleteNews deletes a news article by ID
// @Summary Delete news article
// @Description Deletes a news article; owned gallery images are removed with it
// @Tags News
// @Produce json
// @Param newsID path string true "News ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid newsID"
// @Failure 404 {object} ErrorResponse "Not Found - News article not found"
// @Router /news-item/{newsID} [delete]
func (h newsHandler) deleteNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		newsID, err := uuid.Parse(chi.URLParam(r, "newsID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid newsID"))
			return
		}

		existing, err := h.newsRepo.FindByID(newsID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find news", "news article", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("news article"))
			return
		}

		if err := h.newsRepo.Delete(newsID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete news", "news article", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "news article deleted successfully",
		})
	}
}
