package models

import (
	"time"
)

// Post carries two derived counters. Likes and Comments are caches over the
// ledger tables and are recomputed after every ledger mutation, never
// incremented in place.
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Description string    `json:"description" gorm:"type:text;not null"`
	ImageBucket *string   `json:"image_bucket" gorm:"size:500"`
	Likes       int       `json:"likes" gorm:"default:0"`
	Comments    int       `json:"comments" gorm:"default:0"`
	Pinned      bool      `json:"pinned" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User Profile `json:"user" gorm:"foreignKey:UserID"`
}

// Like is a ledger row. The composite unique index keeps a user at one like
// per post even when two toggles race past the existence check.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;uniqueIndex:uk_likes_post_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:uk_likes_post_user"`
	CreatedAt time.Time `json:"created_at"`

	User Profile `json:"user" gorm:"foreignKey:UserID"`
}
