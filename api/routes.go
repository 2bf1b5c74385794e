package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface and the admin write surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/projects/published", handlers.projectHandler.getPublishedProjects())
		r.Get("/projects/slug/{slug}", handlers.projectHandler.getProjectBySlug())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())

		r.Get("/news", handlers.newsHandler.getAllNews())
		r.Get("/news/published", handlers.newsHandler.getPublishedNews())
		r.Get("/news/slug/{slug}", handlers.newsHandler.getNewsBySlug())
		r.Get("/news-item/{newsID}", handlers.newsHandler.getNews())

		r.Get("/categories", handlers.categoryHandler.getAllCategories())
		r.Get("/hero-images", handlers.heroImageHandler.getHeroImages())
		r.Get("/section-images", handlers.sectionImageHandler.getSectionImages())

		r.Post("/contact", handlers.contactHandler.submitContact())
	})

	// Admin routes: every write operation requires an administrator token
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)
		r.Use(authMiddleware.requireAdmin)

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/news-item", handlers.newsHandler.createNews())
		r.Put("/news-item/{newsID}", handlers.newsHandler.updateNews())
		r.Delete("/news-item/{newsID}", handlers.newsHandler.deleteNews())

		r.Post("/category", handlers.categoryHandler.createCategory())

		r.Post("/hero-image", handlers.heroImageHandler.createHeroImage())
		r.Put("/hero-image/{heroImageID}", handlers.heroImageHandler.updateHeroImage())
		r.Delete("/hero-image/{heroImageID}", handlers.heroImageHandler.deleteHeroImage())

		r.Post("/section-image", handlers.sectionImageHandler.createSectionImage())
		r.Put("/section-image/{sectionImageID}", handlers.sectionImageHandler.updateSectionImage())
		r.Delete("/section-image/{sectionImageID}", handlers.sectionImageHandler.deleteSectionImage())

		r.Post("/upload", handlers.uploadHandler.upload())
	})
}
