package repositories

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"pulse-api/models"
)

// LikeRepository owns the (post, user) like ledger and keeps the post's
// cached like counter in sync by recounting after every mutation.
type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Toggle likes the post when no ledger row exists for the user, unlikes it
// otherwise. Returns the resulting state. The existence check and the write
// are separate statements; the composite unique index on (post_id, user_id)
// backstops concurrent toggles.
func (r *LikeRepository) Toggle(postID, userID uint) (bool, error) {
	var existing models.Like
	err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if err == nil {
		if err := r.Unlike(postID, userID, existing.ID); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := r.Like(postID, userID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *LikeRepository) Like(postID, userID uint) error {
	like := models.Like{
		PostID: postID,
		UserID: userID,
	}
	if err := r.db.Create(&like).Error; err != nil {
		return err
	}

	r.refreshCount(postID)
	return nil
}

// Unlike removes the user's like row. A non-zero likeID narrows the delete
// to a specific row and saves a second lookup.
func (r *LikeRepository) Unlike(postID, userID, likeID uint) error {
	query := r.db.Where("post_id = ? AND user_id = ?", postID, userID)
	if likeID != 0 {
		query = query.Where("id = ?", likeID)
	}
	if err := query.Delete(&models.Like{}).Error; err != nil {
		return err
	}

	r.refreshCount(postID)
	return nil
}

// HasLiked treats an absent row as false, not as an error.
func (r *LikeRepository) HasLiked(postID, userID uint) (bool, error) {
	var like models.Like
	err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *LikeRepository) Count(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *LikeRepository) ListLikers(postID uint, limit, offset int) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&likes).Error
	return likes, err
}

// refreshCount re-derives the post's like counter from the ledger and
// persists it. Failures are logged and never fail the like/unlike itself;
// the next mutation recounts from scratch anyway.
func (r *LikeRepository) refreshCount(postID uint) {
	count, err := r.Count(postID)
	if err != nil {
		log.Printf("Error counting likes for post %d: %v", postID, err)
		return
	}
	if err := r.db.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("likes", count).Error; err != nil {
		log.Printf("Error updating like count for post %d: %v", postID, err)
	}
}
