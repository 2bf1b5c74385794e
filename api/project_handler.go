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

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo ProjectStore
}

func newProjectHandler(projectRepo ProjectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CategoryID  *uuid.UUID   `json:"categoryId,omitempty"`
	Published   bool         `json:"published"`
	Featured    bool         `json:"featured"`
	Images      []ImageInput `json:"images,omitempty"`
}

// UpdateProjectRequest is a patch payload. A nil field is left untouched; a
// present field overwrites. A present empty image list deletes the gallery.
type UpdateProjectRequest struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	CategoryID  *uuid.UUID    `json:"categoryId,omitempty"`
	Published   *bool         `json:"published,omitempty"`
	Featured    *bool         `json:"featured,omitempty"`
	Images      *[]ImageInput `json:"images,omitempty"`
}

// projectImagesFromInput converts a submitted gallery into image rows with
// dense zero-based order assigned from array position.
func projectImagesFromInput(inputs []ImageInput) []models.ProjectImage {
	images := make([]models.ProjectImage, len(inputs))
	for i, in := range inputs {
		images[i] = models.ProjectImage{
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

// getAllProjects retrieves every project for the admin dashboard
// @Summary Get all projects
// @Description Retrieves all projects, published or not, with category and ordered images
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "project", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getPublishedProjects retrieves the public project gallery
// @Summary Get published projects
// @Description Retrieves published projects ordered featured-first then newest-first
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of published projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /projects/published [get]
func (h projectHandler) getPublishedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAllPublished()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find published projects", "project", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Project details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// getProjectBySlug resolves a published project by its slug
// @Summary Get published project by slug
// @Tags Projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} models.Project "Project details"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /projects/slug/{slug} [get]
func (h projectHandler) getProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.projectRepo.FindBySlug(chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project by slug", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project with its gallery
// @Summary Create project
// @Description Creates a project; slug is derived from the title and must be unique
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body CreateProjectRequest true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Router /project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req CreateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
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

		projectSlug := slug.Make(req.Title)
		if projectSlug == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("title", "title must contain at least one letter or digit"))
			return
		}

		// Best-effort pre-check; the slug column's unique constraint is the
		// authoritative check and races surface through wrapDatabaseError.
		taken, err := h.projectRepo.SlugExists(projectSlug, uuid.Nil)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check project slug", "project", err))
			return
		}
		if taken {
			h.responder.WriteError(w, errs.NewSlugTaken("project"))
			return
		}

		project := models.Project{
			Title:       req.Title,
			Description: req.Description,
			Slug:        projectSlug,
			CategoryID:  req.CategoryID,
			Published:   req.Published,
			Featured:    req.Featured,
			AuthorID:    authorID,
			Images:      projectImagesFromInput(req.Images),
		}
		if len(req.Images) > 0 {
			project.ImageURL = &req.Images[0].URL
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		// Reload to get preloaded category and ordered images
		createdProject, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created project", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, createdProject)
	}
}

// updateProject updates an existing project
// @Summary Update project
// @Description Applies a patch; a supplied image list replaces the entire gallery
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body UpdateProjectRequest true "Project patch"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Router /project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		var req UpdateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Title != nil {
			projectSlug := slug.Make(*req.Title)
			if projectSlug == "" {
				h.responder.WriteError(w, errs.NewInvalidFieldError("title", "title must contain at least one letter or digit"))
				return
			}

			taken, err := h.projectRepo.SlugExists(projectSlug, projectID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("check project slug", "project", err))
				return
			}
			if taken {
				h.responder.WriteError(w, errs.NewSlugTaken("project"))
				return
			}

			existing.Title = *req.Title
			existing.Slug = projectSlug
		}
		if req.Description != nil {
			existing.Description = *req.Description
		}
		if req.CategoryID != nil {
			if *req.CategoryID == uuid.Nil {
				existing.CategoryID = nil
			} else {
				existing.CategoryID = req.CategoryID
			}
		}
		if req.Published != nil {
			existing.Published = *req.Published
		}
		if req.Featured != nil {
			existing.Featured = *req.Featured
		}

		var images []models.ProjectImage
		if req.Images != nil {
			images = projectImagesFromInput(*req.Images)
			if len(images) > 0 {
				existing.ImageURL = &images[0].URL
			} else {
				existing.ImageURL = nil
			}
		}
		existing.Images = nil
		existing.Category = nil
		existing.Author = nil

		if err := h.projectRepo.Update(existing, images); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		updatedProject, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.responder.WriteJSON(w, updatedProject)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Deletes a project; owned gallery images are removed with it
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
