// database_test.go provides a shared test database helper for the repository
// integration tests. Tests are skipped if PostgreSQL is not available.
package database

import (
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/artifexgroup/artifex-site-backend/models"
)

// testDSN returns the PostgreSQL connection string for testing.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "postgres")
	pass := envOr("POSTGRES_PASSWORD", "postgres")
	name := envOr("POSTGRES_DB", "artifex_test")
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens the test database and migrates the schema. If the database is
// unavailable, the test is skipped. A cleanup function closes the connection
// when the test finishes.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.Open(testDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Project{},
		&models.ProjectImage{},
		&models.News{},
		&models.NewsImage{},
		&models.HeroImage{},
		&models.SectionImage{},
	); err != nil {
		sqlDB.Close()
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// testAuthor inserts a user for authorship and removes it when the test ends.
func testAuthor(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Email: "author-" + uuid.NewString()[:8] + "@test.local",
		Name:  "Test Author",
		Role:  models.RoleAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create author: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM users WHERE id = ?", user.ID) })
	return user
}

// cleanProjects removes test projects and their images by slug. Call in t.Cleanup().
func cleanProjects(t *testing.T, db *gorm.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM project_images WHERE project_id IN (SELECT id FROM projects WHERE slug = ?)", slug)
		db.Exec("DELETE FROM projects WHERE slug = ?", slug)
	}
}

// cleanNews removes test news articles and their images by slug. Call in t.Cleanup().
func cleanNews(t *testing.T, db *gorm.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM news_images WHERE news_id IN (SELECT id FROM news WHERE slug = ?)", slug)
		db.Exec("DELETE FROM news WHERE slug = ?", slug)
	}
}
