package api

import (
	"github.com/artifexgroup/artifex-site-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, storage ObjectStorage, mailer EmailSender, jwtSecret string) *routeHandlers {
	return &routeHandlers{
		authHandler:         newAuthHandler(db.UserRepo(), jwtSecret),
		projectHandler:      newProjectHandler(db.ProjectRepo()),
		newsHandler:         newNewsHandler(db.NewsRepo()),
		categoryHandler:     newCategoryHandler(db.CategoryRepo()),
		heroImageHandler:    newHeroImageHandler(db.HeroImageRepo(), storage),
		sectionImageHandler: newSectionImageHandler(db.SectionImageRepo(), storage),
		uploadHandler:       newUploadHandler(storage),
		contactHandler:      newContactHandler(mailer),
	}
}
