package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pulse-api/repositories"
	"pulse-api/utils"
)

type PostController struct {
	posts    *repositories.PostRepository
	users    *repositories.UserRepository
	resolver *repositories.Resolver
}

func NewPostController(posts *repositories.PostRepository, users *repositories.UserRepository, resolver *repositories.Resolver) *PostController {
	return &PostController{
		posts:    posts,
		users:    users,
		resolver: resolver,
	}
}

type CreatePostRequest struct {
	Description   string  `json:"description"`
	ImageIDBucket *string `json:"imageIdBucket"`
}

type UpdatePostRequest struct {
	Description   *string     `json:"description"`
	ImageIDBucket *string     `json:"imageIdBucket"`
	Likes         interface{} `json:"likes"`
	Comments      interface{} `json:"comments"`
}

// GetPosts serves the feed: all pinned posts ahead of a paginated page of
// regular ones.
func (pc *PostController) GetPosts(c *gin.Context) {
	limit, offset := parsePagination(c, 10)

	posts, err := pc.posts.List(limit, offset)
	if err != nil {
		utils.SendStoreError(c, "Error fetching posts", err)
		return
	}

	utils.SendPaginated(c, posts, limit, offset, len(posts))
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil || utils.IsBlank(req.Description) {
		utils.SendError(c, http.StatusBadRequest, "Description is required")
		return
	}

	profile, ok := callerProfile(c, pc.users)
	if !ok {
		return
	}

	post, err := pc.posts.Create(profile.ID, req.Description, req.ImageIDBucket)
	if err != nil {
		utils.SendStoreError(c, "Error creating post", err)
		return
	}

	utils.SendCreated(c, "Post created successfully", post)
}

func (pc *PostController) GetTrending(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		limit = 5
	}

	posts, err := pc.posts.Trending(limit)
	if err != nil {
		utils.SendStoreError(c, "Error fetching trending posts", err)
		return
	}

	utils.SendData(c, posts)
}

// GetPostsByUser accepts either an internal id or an external identity in
// the path.
func (pc *PostController) GetPostsByUser(c *gin.Context) {
	limit, offset := parsePagination(c, 10)

	userID, err := pc.resolver.Resolve(c.Param("userId"))
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			utils.SendError(c, http.StatusNotFound, "User profile not found")
		} else {
			utils.SendStoreError(c, "Error fetching user posts", err)
		}
		return
	}

	posts, err := pc.posts.ListByUser(userID, limit, offset)
	if err != nil {
		utils.SendStoreError(c, "Error fetching user posts", err)
		return
	}

	utils.SendPaginated(c, posts, limit, offset, len(posts))
}

func (pc *PostController) GetPost(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	post, err := pc.posts.Get(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
		} else {
			utils.SendStoreError(c, "Error fetching post", err)
		}
		return
	}

	utils.SendData(c, post)
}

// UpdatePost is the trusted administrative path: it writes caller-supplied
// fields through, counters included.
func (pc *PostController) UpdatePost(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := map[string]interface{}{}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageIDBucket != nil {
		updates["image_bucket"] = *req.ImageIDBucket
	}
	if req.Likes != nil {
		updates["likes"] = req.Likes
	}
	if req.Comments != nil {
		updates["comments"] = req.Comments
	}

	post, err := pc.posts.Update(postID, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
		} else {
			utils.SendStoreError(c, "Error updating post", err)
		}
		return
	}

	utils.SendSuccess(c, "Post updated successfully", post)
}

// DeletePost is owner-only; likes and comments of the post are left behind.
func (pc *PostController) DeletePost(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	post, err := pc.posts.Get(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
		} else {
			utils.SendStoreError(c, "Error fetching post", err)
		}
		return
	}

	profile, ok := callerProfile(c, pc.users)
	if !ok {
		return
	}

	if post.UserID != profile.ID {
		utils.SendError(c, http.StatusForbidden, "You can only delete your own posts")
		return
	}

	if err := pc.posts.Delete(postID); err != nil {
		utils.SendStoreError(c, "Error deleting post", err)
		return
	}

	utils.SendSuccess(c, "Post deleted successfully", nil)
}

func (pc *PostController) PinPost(c *gin.Context) {
	pc.setPinned(c, true)
}

func (pc *PostController) UnpinPost(c *gin.Context) {
	pc.setPinned(c, false)
}

func (pc *PostController) setPinned(c *gin.Context, pinned bool) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	var post interface{}
	var err error
	if pinned {
		post, err = pc.posts.Pin(postID)
	} else {
		post, err = pc.posts.Unpin(postID)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
		} else {
			utils.SendStoreError(c, "Error updating post", err)
		}
		return
	}

	utils.SendData(c, post)
}

func (pc *PostController) CountPosts(c *gin.Context) {
	count, err := pc.posts.Count()
	if err != nil {
		utils.SendStoreError(c, "Error counting posts", err)
		return
	}

	utils.SendData(c, gin.H{"count": count})
}

func (pc *PostController) SearchPosts(c *gin.Context) {
	query := c.Query("q")
	if utils.IsBlank(query) {
		utils.SendError(c, http.StatusBadRequest, "Search query is required")
		return
	}
	limit, offset := parsePagination(c, 10)

	posts, err := pc.posts.Search(query, limit, offset)
	if err != nil {
		utils.SendStoreError(c, "Error searching posts", err)
		return
	}

	utils.SendPaginated(c, posts, limit, offset, len(posts))
}
