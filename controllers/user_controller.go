package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pulse-api/repositories"
	"pulse-api/utils"
)

type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(users *repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

type UpdateUserDataRequest struct {
	DisplayName *string `json:"displayName"`
	ImageBucket *string `json:"imageBucket"`
}

func (uc *UserController) GetUsers(c *gin.Context) {
	profiles, err := uc.users.ListProfiles()
	if err != nil {
		utils.SendStoreError(c, "Error fetching users data", err)
		return
	}

	utils.SendData(c, profiles)
}

// UpdateUserData patches the profile keyed by the external identity in the
// path.
func (uc *UserController) UpdateUserData(c *gin.Context) {
	var req UpdateUserDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.ImageBucket != nil {
		updates["image_bucket"] = *req.ImageBucket
	}

	profile, err := uc.users.UpdateProfile(c.Param("userId"), updates)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			utils.SendError(c, http.StatusNotFound, "User profile not found")
		} else {
			utils.SendStoreError(c, "Error updating user data", err)
		}
		return
	}

	utils.SendData(c, profile)
}

func (uc *UserController) UpdateDisplayName(c *gin.Context) {
	var req struct {
		DisplayName string `json:"displayName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.DisplayName == "" {
		utils.SendError(c, http.StatusBadRequest, "displayName is required")
		return
	}

	profile, err := uc.users.UpdateDisplayName(c.Param("userId"), req.DisplayName)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			utils.SendError(c, http.StatusNotFound, "User profile not found")
		} else {
			utils.SendStoreError(c, "Error updating display name", err)
		}
		return
	}

	utils.SendData(c, profile)
}

// DeleteUserData removes the directory record only; content authored by the
// profile stays behind.
func (uc *UserController) DeleteUserData(c *gin.Context) {
	if err := uc.users.DeleteProfile(c.Param("userId")); err != nil {
		utils.SendStoreError(c, "Error deleting user data", err)
		return
	}

	utils.SendSuccess(c, "User data deleted successfully", nil)
}

func (uc *UserController) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	if utils.IsBlank(query) {
		utils.SendError(c, http.StatusBadRequest, "Search query is required")
		return
	}
	limit, offset := parsePagination(c, 10)

	profiles, err := uc.users.SearchProfiles(query, limit, offset)
	if err != nil {
		utils.SendStoreError(c, "Error searching users", err)
		return
	}

	utils.SendPaginated(c, profiles, limit, offset, len(profiles))
}

// GetRandomUsers serves follow suggestions: oversample, shuffle, cut.
func (uc *UserController) GetRandomUsers(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		limit = 5
	}

	profiles, err := uc.users.RandomProfiles(limit)
	if err != nil {
		utils.SendStoreError(c, "Error fetching random users", err)
		return
	}

	utils.SendData(c, profiles)
}
