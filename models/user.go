package models

import (
	"strings"
	"time"
)

// Account is the authentication identity. Its ID is the opaque external
// identifier carried inside bearer tokens; it never appears as a foreign key
// on posts, likes or comments.
type Account struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the directory record keyed by the auto-assigned internal id.
// All content tables join against Profile.ID, never against Account.ID.
type Profile struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AccountID   string    `json:"account_id" gorm:"uniqueIndex;not null;size:191"`
	DisplayName string    `json:"display_name" gorm:"not null;size:255"`
	ImageBucket *string   `json:"image_bucket" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Posts    []Post    `json:"-" gorm:"foreignKey:UserID"`
	Comments []Comment `json:"-" gorm:"foreignKey:UserID"`
}

// DefaultDisplayName derives the fallback display name from an email
// address, e.g. "a@example.com" -> "a".
func DefaultDisplayName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	if email == "" {
		return "User"
	}
	return email
}
