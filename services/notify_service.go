package services

import (
	"log"

	"gorm.io/gorm"

	"pulse-api/models"
)

// Notifier turns ledger events into best-effort emails. Every failure here
// is logged and swallowed: a notification must never fail the write that
// triggered it. Callers dispatch via a goroutine to keep it off the
// response path.
type Notifier struct {
	db    *gorm.DB
	email *EmailService
}

func NewNotifier(db *gorm.DB, email *EmailService) *Notifier {
	return &Notifier{
		db:    db,
		email: email,
	}
}

// CommentCreated notifies the post owner about a new comment. Commenting on
// your own post sends nothing.
func (n *Notifier) CommentCreated(postID, commenterID uint, commentText string) {
	post, owner, email, ok := n.postOwner(postID)
	if !ok {
		return
	}

	if post.UserID == commenterID {
		return
	}

	commenter, ok := n.profile(commenterID)
	if !ok {
		return
	}

	if err := n.email.SendCommentNotification(email, owner.DisplayName, commenter.DisplayName, commentText, post.Description); err != nil {
		log.Printf("Error sending comment notification for post %d: %v", postID, err)
	}
}

// LikeAdded mirrors CommentCreated for likes. The like flow does not call
// it yet.
func (n *Notifier) LikeAdded(postID, likerID uint) {
	post, owner, email, ok := n.postOwner(postID)
	if !ok {
		return
	}

	if post.UserID == likerID {
		return
	}

	liker, ok := n.profile(likerID)
	if !ok {
		return
	}

	if err := n.email.SendLikeNotification(email, owner.DisplayName, liker.DisplayName, post.Description); err != nil {
		log.Printf("Error sending like notification for post %d: %v", postID, err)
	}
}

func (n *Notifier) postOwner(postID uint) (*models.Post, *models.Profile, string, bool) {
	var post models.Post
	if err := n.db.First(&post, "id = ?", postID).Error; err != nil {
		log.Printf("Error fetching post %d for notification: %v", postID, err)
		return nil, nil, "", false
	}

	owner, ok := n.profile(post.UserID)
	if !ok {
		return nil, nil, "", false
	}

	var account models.Account
	if err := n.db.First(&account, "id = ?", owner.AccountID).Error; err != nil {
		log.Printf("Error fetching owner account for post %d: %v", postID, err)
		return nil, nil, "", false
	}

	return &post, owner, account.Email, true
}

func (n *Notifier) profile(id uint) (*models.Profile, bool) {
	var profile models.Profile
	if err := n.db.First(&profile, "id = ?", id).Error; err != nil {
		log.Printf("Error fetching profile %d for notification: %v", id, err)
		return nil, false
	}
	return &profile, true
}
