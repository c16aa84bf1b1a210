package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulse-api/config"
	"pulse-api/services"
	"pulse-api/utils"
)

type StorageController struct {
	storage *services.StorageService
	config  *config.Config
}

func NewStorageController(storage *services.StorageService, cfg *config.Config) *StorageController {
	return &StorageController{
		storage: storage,
		config:  cfg,
	}
}

// GetImageURL resolves a stored image to a signed (or public) URL.
func (sc *StorageController) GetImageURL(c *gin.Context) {
	fileName := c.Param("fileName")
	if fileName == "" {
		utils.SendError(c, http.StatusBadRequest, "File name is required")
		return
	}

	url, err := sc.storage.ImageURL(c.Request.Context(), sc.config.PostImageBucket, fileName)
	if err != nil {
		utils.SendStoreError(c, "Error getting image URL", err)
		return
	}

	utils.SendData(c, gin.H{"url": url})
}

// UploadImage stores a post image under a unique object name and returns it
// for use as the post's imageIdBucket reference.
func (sc *StorageController) UploadImage(c *gin.Context) {
	accountID := c.GetString("account_id")

	header, err := c.FormFile("image")
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Image file is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.SendStoreError(c, "Error reading uploaded file", err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	fileName, err := sc.storage.UploadUnique(c.Request.Context(), sc.config.PostImageBucket, accountID, header.Filename, file, header.Size, contentType)
	if err != nil {
		utils.SendStoreError(c, "Error uploading image", err)
		return
	}

	utils.SendCreated(c, "Image uploaded successfully", gin.H{"fileName": fileName})
}
