package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pulse-api/models"
	"pulse-api/repositories"
	"pulse-api/utils"
)

// parseID rejects non-numeric path parameters with a 400 before any store
// access happens.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s. Must be a number.", param))
		return 0, false
	}
	return uint(id), true
}

func parsePagination(c *gin.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// callerProfile maps the authenticated external identity to its directory
// record. Write paths require the profile to already exist.
func callerProfile(c *gin.Context, users *repositories.UserRepository) (*models.Profile, bool) {
	accountID := c.GetString("account_id")

	profile, err := users.GetProfile(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			utils.SendError(c, http.StatusNotFound, "User profile not found")
		} else {
			utils.SendStoreError(c, "Error resolving user profile", err)
		}
		return nil, false
	}
	return profile, true
}
