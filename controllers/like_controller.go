package controllers

import (
	"errors"

	"net/http"

	"github.com/gin-gonic/gin"

	"pulse-api/repositories"
	"pulse-api/utils"
)

type LikeController struct {
	likes *repositories.LikeRepository
	posts *repositories.PostRepository
	users *repositories.UserRepository
}

func NewLikeController(likes *repositories.LikeRepository, posts *repositories.PostRepository, users *repositories.UserRepository) *LikeController {
	return &LikeController{
		likes: likes,
		posts: posts,
		users: users,
	}
}

// CheckLike reports whether the caller has liked the post.
func (lc *LikeController) CheckLike(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	profile, ok := callerProfile(c, lc.users)
	if !ok {
		return
	}

	liked, err := lc.likes.HasLiked(postID, profile.ID)
	if err != nil {
		utils.SendStoreError(c, "Error checking like status", err)
		return
	}

	utils.SendData(c, gin.H{"liked": liked})
}

// ToggleLike flips the caller's like on the post and reports the new state.
func (lc *LikeController) ToggleLike(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	profile, ok := callerProfile(c, lc.users)
	if !ok {
		return
	}

	if _, err := lc.posts.Get(postID); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
		} else {
			utils.SendStoreError(c, "Error toggling like", err)
		}
		return
	}

	liked, err := lc.likes.Toggle(postID, profile.ID)
	if err != nil {
		utils.SendStoreError(c, "Error toggling like", err)
		return
	}

	message := "Post unliked"
	if liked {
		message = "Post liked"
	}
	utils.SendSuccess(c, message, gin.H{"liked": liked})
}

// GetPostLikes lists who liked the post, newest first.
func (lc *LikeController) GetPostLikes(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}
	limit, offset := parsePagination(c, 20)

	likes, err := lc.likes.ListLikers(postID, limit, offset)
	if err != nil {
		utils.SendStoreError(c, "Error fetching post likes", err)
		return
	}

	utils.SendPaginated(c, likes, limit, offset, len(likes))
}
