package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pulse-api/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.Account{},
		&models.Profile{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

func seedProfile(t *testing.T, db *gorm.DB, displayName string) *models.Profile {
	t.Helper()

	account := models.Account{
		ID:       uuid.New().String(),
		Email:    displayName + "@example.com",
		Password: "hashed",
	}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}

	profile := models.Profile{
		AccountID:   account.ID,
		DisplayName: displayName,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return &profile
}

func seedPost(t *testing.T, db *gorm.DB, userID uint, description string, createdAt time.Time) *models.Post {
	t.Helper()

	post := models.Post{
		UserID:      userID,
		Description: description,
		CreatedAt:   createdAt,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return &post
}

func postCounters(t *testing.T, db *gorm.DB, postID uint) (int, int) {
	t.Helper()

	var post models.Post
	if err := db.First(&post, "id = ?", postID).Error; err != nil {
		t.Fatalf("fetch post %d: %v", postID, err)
	}
	return post.Likes, post.Comments
}
