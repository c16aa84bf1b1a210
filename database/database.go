package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pulse-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Account{},
		&models.Profile{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Feed queries page non-pinned posts by recency
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_pinned_created ON posts(pinned, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for posts feed: %v\n", err)
	}

	// Trending orders by the cached like counter
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_likes_created ON posts(likes DESC, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for trending posts: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_post_created ON comments(post_id, created_at)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for comments: %v\n", err)
	}

	return nil
}
