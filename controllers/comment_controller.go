package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulse-api/models"
	"pulse-api/repositories"
	"pulse-api/services"
	"pulse-api/utils"
)

type CommentController struct {
	comments *repositories.CommentRepository
	posts    *repositories.PostRepository
	users    *repositories.UserRepository
	resolver *repositories.Resolver
	notifier *services.Notifier
}

func NewCommentController(comments *repositories.CommentRepository, posts *repositories.PostRepository, users *repositories.UserRepository, resolver *repositories.Resolver, notifier *services.Notifier) *CommentController {
	return &CommentController{
		comments: comments,
		posts:    posts,
		users:    users,
		resolver: resolver,
		notifier: notifier,
	}
}

type CreateCommentRequest struct {
	CommentText string `json:"commentText"`
}

func (cc *CommentController) GetComments(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}
	limit, offset := parsePagination(c, 20)

	comments, err := cc.comments.ListByPost(postID, limit, offset)
	if err != nil {
		utils.SendStoreError(c, "Error fetching comments", err)
		return
	}

	utils.SendPaginated(c, comments, limit, offset, len(comments))
}

// CreateComment inserts the comment and hands the owner notification off to
// a goroutine; the response never waits on (or reflects) the email.
func (cc *CommentController) CreateComment(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || utils.IsBlank(req.CommentText) {
		utils.SendError(c, http.StatusBadRequest, "Comment text is required")
		return
	}

	profile, ok := callerProfile(c, cc.users)
	if !ok {
		return
	}

	if _, err := cc.posts.Get(postID); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
		} else {
			utils.SendStoreError(c, "Error creating comment", err)
		}
		return
	}

	comment, err := cc.comments.Create(postID, profile.ID, req.CommentText)
	if err != nil {
		utils.SendStoreError(c, "Error creating comment", err)
		return
	}

	go cc.notifier.CommentCreated(postID, profile.ID, comment.Body)

	utils.SendCreated(c, "Comment created successfully", comment)
}

func (cc *CommentController) GetCommentsByUser(c *gin.Context) {
	limit, offset := parsePagination(c, 20)

	userID, err := cc.resolver.Resolve(c.Param("userId"))
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			utils.SendError(c, http.StatusNotFound, "User profile not found")
		} else {
			utils.SendStoreError(c, "Error fetching comments", err)
		}
		return
	}

	comments, err := cc.comments.ListByUser(userID, limit, offset)
	if err != nil {
		utils.SendStoreError(c, "Error fetching comments", err)
		return
	}

	utils.SendPaginated(c, comments, limit, offset, len(comments))
}

func (cc *CommentController) UpdateComment(c *gin.Context) {
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || utils.IsBlank(req.CommentText) {
		utils.SendError(c, http.StatusBadRequest, "Comment text is required")
		return
	}

	comment, ok := cc.ownedComment(c, commentID)
	if !ok {
		return
	}

	updated, err := cc.comments.Update(comment.ID, req.CommentText)
	if err != nil {
		utils.SendStoreError(c, "Error updating comment", err)
		return
	}

	utils.SendSuccess(c, "Comment updated successfully", updated)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	comment, ok := cc.ownedComment(c, commentID)
	if !ok {
		return
	}

	if err := cc.comments.Delete(comment.ID); err != nil {
		utils.SendStoreError(c, "Error deleting comment", err)
		return
	}

	utils.SendSuccess(c, "Comment deleted successfully", nil)
}

func (cc *CommentController) ownedComment(c *gin.Context, commentID uint) (*models.Comment, bool) {
	comment, err := cc.comments.Get(commentID)
	if err != nil {
		if errors.Is(err, repositories.ErrCommentNotFound) {
			utils.SendError(c, http.StatusNotFound, "Comment not found")
		} else {
			utils.SendStoreError(c, "Error fetching comment", err)
		}
		return nil, false
	}

	profile, ok := callerProfile(c, cc.users)
	if !ok {
		return nil, false
	}

	if comment.UserID != profile.ID {
		utils.SendError(c, http.StatusForbidden, "You can only modify your own comments")
		return nil, false
	}

	return comment, true
}
