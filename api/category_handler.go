package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/artifexgroup/artifex-site-backend/errs"
	"github.com/artifexgroup/artifex-site-backend/models"
	"github.com/artifexgroup/artifex-site-backend/slug"
)

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo CategoryStore
}

func newCategoryHandler(categoryRepo CategoryStore) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// getAllCategories lists categories alphabetically with published-project counts
// @Summary Get all categories
// @Tags Categories
// @Produce json
// @Success 200 {array} models.Category "List of categories"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /categories [get]
func (h categoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "category", err))
			return
		}

		h.responder.WriteJSON(w, categories)
	}
}

// createCategory creates a new category
// @Summary Create category
// @Description Creates a category; the name-derived slug must be unique
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body CreateCategoryRequest true "Category data"
// @Success 201 {object} models.Category "Created category"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid category data"
// @Failure 409 {object} ErrorResponse "Conflict - Category already exists"
// @Router /category [post]
func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		categorySlug := slug.Make(req.Name)
		if categorySlug == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("name", "name must contain at least one letter or digit"))
			return
		}

		taken, err := h.categoryRepo.SlugExists(categorySlug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check category slug", "category", err))
			return
		}
		if taken {
			h.responder.WriteError(w, errs.NewAlreadyExists("category"))
			return
		}

		category := models.Category{
			Name:        req.Name,
			Slug:        categorySlug,
			Description: req.Description,
		}

		if err := h.categoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create category", "category", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, category)
	}
}
