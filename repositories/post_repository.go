package repositories

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"pulse-api/models"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(userID uint, description string, imageBucket *string) (*models.Post, error) {
	post := models.Post{
		UserID:      userID,
		Description: description,
		ImageBucket: imageBucket,
		Likes:       0,
		Comments:    0,
	}
	if err := r.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return r.Get(post.ID)
}

// List returns every pinned post (newest first) followed by a limit/offset
// page of non-pinned posts. Pinned posts ignore pagination entirely, so a
// page can hold more than limit rows.
func (r *PostRepository) List(limit, offset int) ([]models.Post, error) {
	var pinned []models.Post
	if err := r.db.Preload("User").
		Where("pinned = ?", true).
		Order("created_at DESC").
		Find(&pinned).Error; err != nil {
		return nil, err
	}

	var regular []models.Post
	if err := r.db.Preload("User").
		Where("pinned = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&regular).Error; err != nil {
		return nil, err
	}

	return append(pinned, regular...), nil
}

func (r *PostRepository) ListByUser(userID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) Get(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("User").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Update applies a partial column update. Caller-supplied likes/comments
// values are coerced to integers (zero on parse failure) and written as-is;
// this bypasses the derived-counter maintenance and exists for the trusted
// administrative path only.
func (r *PostRepository) Update(id uint, updates map[string]interface{}) (*models.Post, error) {
	if _, err := r.Get(id); err != nil {
		return nil, err
	}

	for _, key := range []string{"likes", "comments"} {
		if raw, ok := updates[key]; ok {
			updates[key] = coerceCounter(raw)
		}
	}

	if len(updates) > 0 {
		if err := r.db.Model(&models.Post{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.Get(id)
}

// Delete removes the post row only; its like and comment rows stay behind.
func (r *PostRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, "id = ?", id).Error
}

func (r *PostRepository) Pin(id uint) (*models.Post, error) {
	return r.setPinned(id, true)
}

func (r *PostRepository) Unpin(id uint) (*models.Post, error) {
	return r.setPinned(id, false)
}

func (r *PostRepository) setPinned(id uint, pinned bool) (*models.Post, error) {
	if _, err := r.Get(id); err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Post{}).Where("id = ?", id).Update("pinned", pinned).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

func (r *PostRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}

// Trending orders by the cached like counter, recency breaking ties.
func (r *PostRepository) Trending(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("User").
		Order("likes DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// Search matches descriptions case-insensitively by substring, newest first.
func (r *PostRepository) Search(query string, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	err := r.db.Preload("User").
		Where("LOWER(description) LIKE ?", pattern).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func coerceCounter(raw interface{}) int {
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		return 0
	default:
		return 0
	}
}
