package repositories

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"pulse-api/models"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository owns the comment ledger and the post's cached comment
// counter.
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(postID, userID uint, body string) (*models.Comment, error) {
	comment := models.Comment{
		PostID: postID,
		UserID: userID,
		Body:   body,
	}
	if err := r.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	r.refreshCount(postID)

	if err := r.db.Preload("User").First(&comment, "id = ?", comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost orders ascending by creation time, oldest comment first.
func (r *CommentRepository) ListByPost(postID uint, limit, offset int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) ListByUser(userID uint, limit, offset int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) Get(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// Update replaces the comment body outright; no edit history is kept.
func (r *CommentRepository) Update(id uint, body string) (*models.Comment, error) {
	comment, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(comment).Update("body", body).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Delete looks the comment up first because the counter refresh needs its
// post id after the row is gone.
func (r *CommentRepository) Delete(id uint) error {
	comment, err := r.Get(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(&models.Comment{}, "id = ?", id).Error; err != nil {
		return err
	}

	r.refreshCount(comment.PostID)
	return nil
}

func (r *CommentRepository) Count(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *CommentRepository) refreshCount(postID uint) {
	count, err := r.Count(postID)
	if err != nil {
		log.Printf("Error counting comments for post %d: %v", postID, err)
		return
	}
	if err := r.db.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("comments", count).Error; err != nil {
		log.Printf("Error updating comment count for post %d: %v", postID, err)
	}
}
