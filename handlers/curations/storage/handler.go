package storage

import (
	"errors"
	"net/http"

	"modugarden-backend/db"
	"modugarden-backend/models"
	"modugarden-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Save a curation
// @Description Store a curation in the authenticated user's bookmarks
// @Tags curations
// @Produce json
// @Param id path string true "Curation ID"
// @Security BearerAuth
// @Success 201 {object} map[string]string "userId, curationId"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Curation not found"
// @Failure 409 {object} map[string]string "error: Curation already saved"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /curations/{id}/storage [post]
func SaveCuration(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	curationID := c.Param("id")

	var curation models.Curation
	if err := db.DB.First(&curation, "id = ?", curationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curation not found"})
		return
	}

	var existing models.CurationStorage
	err := db.DB.Where("user_id = ? AND curation_id = ?", userID, curationID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Curation already saved"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking storage: " + err.Error()})
		return
	}

	stored := models.CurationStorage{
		UserID:     userID.(string),
		CurationID: curationID,
	}
	if err := db.DB.Create(&stored).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving curation: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Curation successfully saved in SaveCuration")
	c.JSON(http.StatusCreated, gin.H{"userId": stored.UserID, "curationId": stored.CurationID})
}

// @Summary Unsave a curation
// @Description Remove a curation from the authenticated user's bookmarks; a no-op when absent
// @Tags curations
// @Produce json
// @Param id path string true "Curation ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "userId, curationId"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Curation not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /curations/{id}/storage [delete]
func UnsaveCuration(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	curationID := c.Param("id")

	var curation models.Curation
	if err := db.DB.First(&curation, "id = ?", curationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curation not found"})
		return
	}

	var stored models.CurationStorage
	err := db.DB.Where("user_id = ? AND curation_id = ?", userID, curationID).First(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"userId": userID, "curationId": curation.ID})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking storage: " + err.Error()})
		return
	}

	if err := db.DB.Delete(&stored).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing saved curation: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Saved curation successfully removed in UnsaveCuration")
	c.JSON(http.StatusOK, gin.H{"userId": userID, "curationId": curation.ID})
}

// @Summary Get my storage status on a curation
// @Description Tell whether the authenticated user has saved the curation
// @Tags curations
// @Produce json
// @Param id path string true "Curation ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "userId, curationId, isSaved"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Curation not found"
// @Router /curations/{id}/storage/me [get]
func GetMyStorageStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	curationID := c.Param("id")

	var curation models.Curation
	if err := db.DB.First(&curation, "id = ?", curationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curation not found"})
		return
	}

	var stored models.CurationStorage
	err := db.DB.Where("user_id = ? AND curation_id = ?", userID, curationID).First(&stored).Error

	c.JSON(http.StatusOK, gin.H{
		"userId":     userID,
		"curationId": curation.ID,
		"isSaved":    err == nil,
	})
}
