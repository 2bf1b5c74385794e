package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artifexgroup/artifex-site-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindByID returns a user by its ID, or nil if no such user exists
func (r *UserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns a user by email, or nil if no such user exists
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureAdmin upserts the administrator account keyed by email and returns it.
// Called once at startup so every write operation can reference a real user
// row instead of special-casing a sentinel identity per request.
func (r *UserRepo) EnsureAdmin(email, name, passwordHash string) (*models.User, error) {
	user := models.User{
		Email:    email,
		Name:     name,
		Password: &passwordHash,
		Role:     models.RoleAdmin,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "password", "role"}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}
	return r.FindByEmail(email)
}
