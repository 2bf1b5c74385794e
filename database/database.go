package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo         *UserRepo
	categoryRepo     *CategoryRepo
	projectRepo      *ProjectRepo
	newsRepo         *NewsRepo
	heroImageRepo    *HeroImageRepo
	sectionImageRepo *SectionImageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:         NewUserRepo(db),
		categoryRepo:     NewCategoryRepo(db),
		projectRepo:      NewProjectRepo(db),
		newsRepo:         NewNewsRepo(db),
		heroImageRepo:    NewHeroImageRepo(db),
		sectionImageRepo: NewSectionImageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) NewsRepo() *NewsRepo {
	return d.newsRepo
}

func (d Database) HeroImageRepo() *HeroImageRepo {
	return d.heroImageRepo
}

func (d Database) SectionImageRepo() *SectionImageRepo {
	return d.sectionImageRepo
}
